package repositories

import (
	"context"

	"assignments/internal/models"
)

// UserRepository defines the interface for credential storage.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// FindByUsername returns ErrNotFound when no row matches and ErrAmbiguous
	// when more than one does.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// ExistsByUsernameOrEmail reports whether any user holds either value.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
