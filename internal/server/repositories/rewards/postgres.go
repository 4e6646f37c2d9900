package rewards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mango-services/loyalty-auth/internal/common"
	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/server/models"
)

const selectCols = `id, name, description, points_required, image_url, is_active, max_available, redeemed_count, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rw *models.Reward) error {
	query := `INSERT INTO rewards (` + selectCols + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var (
		image    sql.NullString
		maxAvail sql.NullInt64
	)
	if rw.ImageURL != nil {
		image = sql.NullString{String: *rw.ImageURL, Valid: true}
	}
	if rw.MaxAvailable != nil {
		maxAvail = sql.NullInt64{Int64: *rw.MaxAvailable, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query, rw.ID, rw.Name, rw.Description, rw.PointsRequired, image,
		rw.IsActive, maxAvail, rw.RedeemedCount, rw.CreatedAt, rw.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Reward, error) {
	query := `SELECT ` + selectCols + `
		 FROM rewards
		 WHERE id = $1`

	rw, err := scanReward(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rw, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Reward, error) {
	query := `SELECT ` + selectCols + `
		 FROM rewards
		 WHERE is_active = TRUE
		 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reward
	for rows.Next() {
		rw, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rewards WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReward(s scanner) (*models.Reward, error) {
	var (
		rw       models.Reward
		image    sql.NullString
		maxAvail sql.NullInt64
		updated  sql.NullTime
	)
	if err := s.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsRequired, &image, &rw.IsActive,
		&maxAvail, &rw.RedeemedCount, &rw.CreatedAt, &updated); err != nil {
		return nil, err
	}
	if image.Valid {
		rw.ImageURL = &image.String
	}
	if maxAvail.Valid {
		rw.MaxAvailable = &maxAvail.Int64
	}
	if updated.Valid {
		rw.UpdatedAt = &updated.Time
	}
	return &rw, nil
}
