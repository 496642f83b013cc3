package repositories

import (
	"context"
	"errors"

	"quicksend/internal/models"
	"quicksend/internal/repositories/cache"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type userRepository struct {
	db     *gorm.DB
	cache  *cache.CacheService
	logger *zap.Logger
}

// NewUserRepository creates a new instance of UserRepository. cache may be
// nil, in which case every lookup goes to the database.
func NewUserRepository(db *gorm.DB, cache *cache.CacheService, logger *zap.Logger) UserRepository {
	return &userRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	return translate(err, "create user", ErrUserNotFound, ErrDuplicateUser)
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	// Cached users carry no hash; the stored one is never overwritten here.
	if err := r.db.WithContext(ctx).Omit("Password").Save(user).Error; err != nil {
		return translate(err, "save user", ErrUserNotFound, ErrDuplicateUser)
	}

	if r.cache != nil {
		if err := r.cache.InvalidateUser(ctx, user.ID); err != nil {
			r.logger.Warn("failed to invalidate user cache", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if r.cache != nil {
		user, err := r.cache.GetUser(ctx, id)
		if err == nil {
			r.logger.Debug("user cache hit", zap.Uint("user_id", id))
			return user, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("user cache lookup failed", zap.Uint("user_id", id), zap.Error(err))
		}
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, "get user", ErrUserNotFound, ErrDuplicateUser)
	}

	if r.cache != nil {
		if err := r.cache.CacheUser(ctx, &user); err != nil {
			r.logger.Warn("failed to cache user", zap.Uint("user_id", id), zap.Error(err))
		}
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *userRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone_number = ?", phone)
}

func (r *userRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return false, translate(err, "count users", ErrUserNotFound, ErrDuplicateUser)
	}
	return count > 0, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, translate(err, "list users", ErrUserNotFound, ErrDuplicateUser)
	}
	return users, nil
}
