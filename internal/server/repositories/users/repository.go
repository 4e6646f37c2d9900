// Package users declares the server-side repository contract for user accounts.
package users

import (
	"context"

	"github.com/mango-services/loyalty-auth/internal/server/models"
)

// Repository persists and looks up users.
type Repository interface {
	// Create inserts the user. A duplicate email yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail returns common.ErrorNotFound when no user has that exact email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
