package repositories

import (
	"context"

	"quicksend/internal/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Create inserts a new user and fills in its ID
	Create(ctx context.Context, user *models.User) error

	// Save writes every field of an existing user except the password hash
	Save(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by their ID
	GetByID(ctx context.Context, id uint) (*models.User, error)

	// ExistsByEmail reports whether any user has the email address
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByPhone reports whether any user has the phone number
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// FindAll returns every user ordered by ID
	FindAll(ctx context.Context) ([]*models.User, error)
}
