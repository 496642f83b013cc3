package repositories

import (
	"context"
	"errors"

	"quicksend/internal/models"
	"quicksend/internal/repositories/cache"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type walletRepository struct {
	db     *gorm.DB
	cache  *cache.CacheService
	logger *zap.Logger
}

// NewWalletRepository creates a wallet repository. cache may be nil.
func NewWalletRepository(db *gorm.DB, cache *cache.CacheService, logger *zap.Logger) WalletRepository {
	return &walletRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *walletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return translate(err, "create wallet", ErrWalletNotFound, ErrDuplicateWallet)
	}

	if r.cache != nil {
		if err := r.cache.CacheWallet(ctx, wallet); err != nil {
			r.logger.Warn("failed to cache wallet", zap.Uint("user_id", wallet.UserID), zap.Error(err))
		}
	}
	return nil
}

func (r *walletRepository) GetByID(ctx context.Context, id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).First(&wallet, id).Error; err != nil {
		return nil, translate(err, "get wallet", ErrWalletNotFound, ErrDuplicateWallet)
	}
	return &wallet, nil
}

func (r *walletRepository) GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	if r.cache != nil {
		wallet, err := r.cache.GetWallet(ctx, userID)
		if err == nil {
			return wallet, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("wallet cache lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	var wallet models.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return nil, translate(err, "get wallet by user", ErrWalletNotFound, ErrDuplicateWallet)
	}

	if r.cache != nil {
		if err := r.cache.CacheWallet(ctx, &wallet); err != nil {
			r.logger.Warn("failed to cache wallet", zap.Uint("user_id", userID), zap.Error(err))
		}
	}
	return &wallet, nil
}

func (r *walletRepository) ExistsByUserID(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Wallet{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, translate(err, "count wallets", ErrWalletNotFound, ErrDuplicateWallet)
	}
	return count > 0, nil
}
