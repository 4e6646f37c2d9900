package rewardtransactions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.RewardTransaction) error {
	query := `INSERT INTO reward_transactions (id, user_reward_id, user_id, points, type, description, reference_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var ref sql.NullString
	if t.ReferenceID != nil {
		ref = sql.NullString{String: *t.ReferenceID, Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserRewardID, t.UserID, t.Points, string(t.Type), t.Description, ref, t.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUserRewardID(ctx context.Context, userRewardID string) ([]*models.RewardTransaction, error) {
	query := `SELECT id, user_reward_id, user_id, points, type, description, reference_id, created_at
		 FROM reward_transactions
		 WHERE user_reward_id = $1
		 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userRewardID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.RewardTransaction
	for rows.Next() {
		var (
			t   models.RewardTransaction
			typ string
			ref sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.UserRewardID, &t.UserID, &t.Points, &typ, &t.Description, &ref, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		t.Type = models.TransactionType(typ)
		if !t.Type.Valid() {
			return nil, fmt.Errorf("db error: unknown transaction type %q", typ)
		}
		if ref.Valid {
			t.ReferenceID = &ref.String
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Sums(ctx context.Context, userRewardID string) (models.LedgerSums, error) {
	query := `SELECT
		   COALESCE(SUM(points) FILTER (WHERE type IN ('Earned', 'Adjusted')), 0),
		   COALESCE(SUM(points), 0),
		   COALESCE(SUM(points) FILTER (WHERE type = 'Earned'), 0)
		 FROM reward_transactions
		 WHERE user_reward_id = $1`

	var s models.LedgerSums
	if err := r.db.QueryRowContext(ctx, query, userRewardID).Scan(&s.Total, &s.Net, &s.Lifetime); err != nil {
		return models.LedgerSums{}, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}
