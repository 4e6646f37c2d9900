// Package rewardtransactions stores the append-only reward ledger.
package rewardtransactions

import (
	"context"

	"github.com/mango-services/loyalty-auth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tx *models.RewardTransaction) error
	// ListByUserRewardID returns transactions most recent first.
	ListByUserRewardID(ctx context.Context, userRewardID string) ([]*models.RewardTransaction, error)
	// Sums recomputes the balances from the log.
	Sums(ctx context.Context, userRewardID string) (models.LedgerSums, error)
}
