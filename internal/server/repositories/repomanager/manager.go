package repomanager

import (
	"context"
	"database/sql"

	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/refreshtokens"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/rewards"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/rewardtransactions"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/userrewards"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/users"
)

// AuthRepositories vends the credential store repositories.
type AuthRepositories interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}

// RewardRepositories vends the ledger and catalog repositories.
type RewardRepositories interface {
	UserRewards(db dbx.DBTX) userrewards.Repository
	RewardTransactions(db dbx.DBTX) rewardtransactions.Repository
	Rewards(db dbx.DBTX) rewards.Repository
}

type RepositoryManager interface {
	// RunMigrations applies the embedded migrations found under dir.
	RunMigrations(ctx context.Context, db *sql.DB, dir string) error
	AuthRepositories
	RewardRepositories
}
