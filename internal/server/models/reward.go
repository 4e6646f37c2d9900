package models

import "time"

// TransactionType classifies a ledger movement.
type TransactionType string

const (
	TransactionEarned   TransactionType = "Earned"
	TransactionRedeemed TransactionType = "Redeemed"
	TransactionExpired  TransactionType = "Expired"
	TransactionAdjusted TransactionType = "Adjusted"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionEarned, TransactionRedeemed, TransactionExpired, TransactionAdjusted:
		return true
	}
	return false
}

// UserReward holds the running point balances of one user.
type UserReward struct {
	ID                   string
	UserID               string
	TotalPoints          int64
	AvailablePoints      int64
	LifetimePointsEarned int64
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// RewardTransaction is one append-only ledger entry. Points is signed:
// positive for Earned, negative for Redeemed.
type RewardTransaction struct {
	ID           string
	UserRewardID string
	UserID       string
	Points       int64
	Type         TransactionType
	Description  string
	ReferenceID  *string
	CreatedAt    time.Time
}

// Reward is a catalog item. MaxAvailable and RedeemedCount are stored but
// not enforced.
type Reward struct {
	ID             string
	Name           string
	Description    string
	PointsRequired int64
	ImageURL       *string
	IsActive       bool
	MaxAvailable   *int64
	RedeemedCount  int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// UserRewardSnapshot is a user's balance together with their transactions,
// most recent first.
type UserRewardSnapshot struct {
	UserReward   *UserReward
	Transactions []*RewardTransaction
}

// LedgerSums are the balances recomputed from the transaction log.
type LedgerSums struct {
	Total    int64
	Net      int64
	Lifetime int64
}

// LedgerCheck compares stored counters with the sums of the transaction log.
type LedgerCheck struct {
	UserID   string
	Stored   UserReward
	Computed LedgerSums
}

// Consistent reports whether the stored counters match the log.
func (c *LedgerCheck) Consistent() bool {
	return c.Stored.TotalPoints == c.Computed.Total &&
		c.Stored.AvailablePoints == c.Computed.Net &&
		c.Stored.LifetimePointsEarned == c.Computed.Lifetime
}
