// Package userrewards stores the per-user denormalized point balances.
package userrewards

import (
	"context"
	"time"

	"github.com/mango-services/loyalty-auth/internal/server/models"
)

type Repository interface {
	// GetByUserID returns common.ErrorNotFound for untracked users.
	GetByUserID(ctx context.Context, userID string) (*models.UserReward, error)

	// Credit adds points to total, available and lifetime in one statement,
	// creating the row with the given id when the user is untracked.
	Credit(ctx context.Context, id, userID string, points int64, now time.Time) (*models.UserReward, error)

	// Debit subtracts points from available only when the balance covers
	// them. It returns common.ErrorNotEligible otherwise.
	Debit(ctx context.Context, userID string, points int64, now time.Time) (*models.UserReward, error)
}
