package userrewards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mango-services/loyalty-auth/internal/common"
	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/server/models"
)

const returningCols = `id, user_id, total_points, available_points, lifetime_points_earned, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.UserReward, error) {
	query := `SELECT ` + returningCols + `
		 FROM user_rewards
		 WHERE user_id = $1`

	ur, err := scanUserReward(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ur, nil
}

func (r *PostgresRepository) Credit(ctx context.Context, id, userID string, points int64, now time.Time) (*models.UserReward, error) {
	query := `INSERT INTO user_rewards (id, user_id, total_points, available_points, lifetime_points_earned, created_at)
		 VALUES ($1, $2, $3, $3, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE
		 SET total_points = user_rewards.total_points + EXCLUDED.total_points,
		     available_points = user_rewards.available_points + EXCLUDED.available_points,
		     lifetime_points_earned = user_rewards.lifetime_points_earned + EXCLUDED.lifetime_points_earned,
		     updated_at = $4
		 RETURNING ` + returningCols

	ur, err := scanUserReward(r.db.QueryRowContext(ctx, query, id, userID, points, now))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ur, nil
}

func (r *PostgresRepository) Debit(ctx context.Context, userID string, points int64, now time.Time) (*models.UserReward, error) {
	query := `UPDATE user_rewards
		 SET available_points = available_points - $2,
		     updated_at = $3
		 WHERE user_id = $1 AND available_points >= $2
		 RETURNING ` + returningCols

	ur, err := scanUserReward(r.db.QueryRowContext(ctx, query, userID, points, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotEligible
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ur, nil
}

func scanUserReward(row *sql.Row) (*models.UserReward, error) {
	var (
		ur      models.UserReward
		updated sql.NullTime
	)
	if err := row.Scan(&ur.ID, &ur.UserID, &ur.TotalPoints, &ur.AvailablePoints,
		&ur.LifetimePointsEarned, &ur.CreatedAt, &updated); err != nil {
		return nil, err
	}
	if updated.Valid {
		ur.UpdatedAt = &updated.Time
	}
	return &ur, nil
}
