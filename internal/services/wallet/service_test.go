package wallet

import (
	"context"
	"errors"
	"testing"

	"quicksend/internal/models"
	"quicksend/internal/repositories"
	"quicksend/internal/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id uint) (*models.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ExistsByUserID(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func TestWalletService_CreateWallet(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockWalletRepository)
		wantErr   error
		errMsg    string
	}{
		{
			name: "successful create",
			setupMock: func(repo *MockWalletRepository) {
				repo.On("ExistsByUserID", mock.Anything, uint(1)).Return(false, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(w *models.Wallet) bool {
					return w.UserID == 1 && w.Currency == "NGN" && w.Status == models.WalletStatusActive
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*models.Wallet).ID = 10
				}).Return(nil)
			},
		},
		{
			name: "user already has a wallet",
			setupMock: func(repo *MockWalletRepository) {
				repo.On("ExistsByUserID", mock.Anything, uint(1)).Return(true, nil)
			},
			wantErr: ErrWalletExists,
		},
		{
			name: "unique index catches a concurrent insert",
			setupMock: func(repo *MockWalletRepository) {
				repo.On("ExistsByUserID", mock.Anything, uint(1)).Return(false, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrDuplicateWallet)
			},
			wantErr: ErrWalletExists,
		},
		{
			name: "database failure",
			setupMock: func(repo *MockWalletRepository) {
				repo.On("ExistsByUserID", mock.Anything, uint(1)).Return(false, errors.New("connection refused"))
			},
			errMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockWalletRepository)
			tt.setupMock(repo)

			s := NewService(repo, WalletConfig{DefaultCurrency: "NGN"}, nil)
			dto, err := s.CreateWallet(context.Background(), 1)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, uint(10), dto.ID)
				assert.Equal(t, uint(1), dto.UserID)
				assert.Equal(t, "NGN", dto.Currency)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestWalletService_DefaultCurrency(t *testing.T) {
	repo := new(MockWalletRepository)
	repo.On("ExistsByUserID", mock.Anything, uint(2)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(repo, WalletConfig{}, nil)
	dto, err := s.CreateWallet(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, dto.Currency)
}

func TestWalletService_FindByUserID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockWalletRepository)
		repo.On("GetByUserID", mock.Anything, uint(5)).Return(&models.Wallet{ID: 3, UserID: 5, Currency: "USD"}, nil)

		res := NewService(repo, WalletConfig{}, nil).FindByUserID(context.Background(), 5)

		assert.Equal(t, result.KindOK, res.Kind())
		assert.Equal(t, msgWalletFetched, res.Message())
		require.Len(t, res.Data(), 1)
		assert.Equal(t, uint(3), res.Data()[0].ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockWalletRepository)
		repo.On("GetByUserID", mock.Anything, uint(5)).Return(nil, repositories.ErrWalletNotFound)

		res := NewService(repo, WalletConfig{}, nil).FindByUserID(context.Background(), 5)

		assert.Equal(t, result.KindNotFound, res.Kind())
		assert.Equal(t, msgWalletNotFound, res.Message())
		assert.Empty(t, res.Data())
	})
}

func TestWalletService_FindByID_InternalError(t *testing.T) {
	repo := new(MockWalletRepository)
	repo.On("GetByID", mock.Anything, uint(8)).Return(nil, errors.New("get wallet: driver: bad connection"))

	res := NewService(repo, WalletConfig{}, nil).FindByID(context.Background(), 8)

	assert.Equal(t, result.KindInternal, res.Kind())
	assert.Equal(t, "get wallet: driver: bad connection", res.Message())
}
