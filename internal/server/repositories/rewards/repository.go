// Package rewards stores the reward catalog.
package rewards

import (
	"context"

	"github.com/mango-services/loyalty-auth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, reward *models.Reward) error
	// GetByID returns common.ErrorNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*models.Reward, error)
	// List returns active rewards only.
	List(ctx context.Context) ([]*models.Reward, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
