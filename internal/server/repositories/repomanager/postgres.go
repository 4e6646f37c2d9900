// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/server/migrations"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/refreshtokens"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/rewards"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/rewardtransactions"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/userrewards"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// UserRewards returns a userrewards.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) UserRewards(db dbx.DBTX) userrewards.Repository {
	return userrewards.NewPostgresRepository(db)
}

// RewardTransactions returns a rewardtransactions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RewardTransactions(db dbx.DBTX) rewardtransactions.Repository {
	return rewardtransactions.NewPostgresRepository(db)
}

// Rewards returns a rewards.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Rewards(db dbx.DBTX) rewards.Repository {
	return rewards.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs the ones
// under dir against the provided database connection. Each dir keeps its own
// version table so both schemas may live in one database.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetTableName(migrations.VersionTable(dir))
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
