package repositories

import (
	"context"

	"quicksend/internal/models"
)

// WalletRepository defines the interface for wallet-related database operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByID(ctx context.Context, id uint) (*models.Wallet, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
	ExistsByUserID(ctx context.Context, userID uint) (bool, error)
}
