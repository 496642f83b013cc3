package wallet

import (
	"context"

	"quicksend/internal/models"
	"quicksend/internal/result"
)

// Service defines the main wallet service interface
type Service interface {
	// CreateWallet provisions an empty wallet for a user.
	CreateWallet(ctx context.Context, userID uint) (models.WalletDTO, error)

	// FindByUserID looks up the wallet owned by a user.
	FindByUserID(ctx context.Context, userID uint) result.Result[models.WalletDTO]

	// FindByID looks up a wallet by its own ID.
	FindByID(ctx context.Context, id uint) result.Result[models.WalletDTO]
}

// WalletConfig holds configuration for wallet operations
type WalletConfig struct {
	DefaultCurrency string
}
