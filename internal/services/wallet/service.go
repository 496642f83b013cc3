package wallet

import (
	"context"
	"errors"
	"fmt"

	"quicksend/internal/models"
	"quicksend/internal/repositories"
	"quicksend/internal/result"

	"go.uber.org/zap"
)

type service struct {
	repo   repositories.WalletRepository
	config WalletConfig
	logger *zap.Logger
}

// NewService creates a new wallet service
func NewService(repo repositories.WalletRepository, config WalletConfig, logger *zap.Logger) Service {
	if repo == nil {
		panic("repo is required")
	}
	if config.DefaultCurrency == "" {
		config.DefaultCurrency = DefaultCurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repo:   repo,
		config: config,
		logger: logger,
	}
}

func (s *service) CreateWallet(ctx context.Context, userID uint) (models.WalletDTO, error) {
	exists, err := s.repo.ExistsByUserID(ctx, userID)
	if err != nil {
		return models.WalletDTO{}, fmt.Errorf("failed to check wallet: %w", err)
	}
	if exists {
		return models.WalletDTO{}, ErrWalletExists
	}

	wallet := &models.Wallet{
		UserID:   userID,
		Status:   models.WalletStatusActive,
		Currency: s.config.DefaultCurrency,
	}

	if err := s.repo.Create(ctx, wallet); err != nil {
		if errors.Is(err, repositories.ErrDuplicateWallet) {
			return models.WalletDTO{}, ErrWalletExists
		}
		return models.WalletDTO{}, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.logger.Info("wallet created", zap.Uint("wallet_id", wallet.ID), zap.Uint("user_id", userID))
	return models.ToWalletDTO(wallet)
}

func (s *service) FindByUserID(ctx context.Context, userID uint) result.Result[models.WalletDTO] {
	wallet, err := s.repo.GetByUserID(ctx, userID)
	return s.lookup(wallet, err, zap.Uint("user_id", userID))
}

func (s *service) FindByID(ctx context.Context, id uint) result.Result[models.WalletDTO] {
	wallet, err := s.repo.GetByID(ctx, id)
	return s.lookup(wallet, err, zap.Uint("wallet_id", id))
}

func (s *service) lookup(wallet *models.Wallet, err error, field zap.Field) result.Result[models.WalletDTO] {
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return result.NotFound[models.WalletDTO](msgWalletNotFound)
		}
		s.logger.Error("wallet lookup failed", field, zap.Error(err))
		return result.Internal[models.WalletDTO](err)
	}

	dto, err := models.ToWalletDTO(wallet)
	if err != nil {
		s.logger.Error("wallet mapping failed", field, zap.Error(err))
		return result.Internal[models.WalletDTO](err)
	}
	return result.OK(msgWalletFetched, dto)
}
