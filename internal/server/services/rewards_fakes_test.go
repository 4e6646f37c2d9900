package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mango-services/loyalty-auth/internal/common"
	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/server/models"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/rewards"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/rewardtransactions"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/userrewards"
)

// memLedger is an in-memory stand-in for the reward database. It keeps the
// conditional semantics of the SQL statements.
type memLedger struct {
	mu       sync.Mutex
	balances map[string]*models.UserReward
	txs      []*models.RewardTransaction
	catalog  map[string]*models.Reward

	creditErr error
	appendErr error
	listErr   error
}

func newMemLedger() *memLedger {
	return &memLedger{
		balances: map[string]*models.UserReward{},
		catalog:  map[string]*models.Reward{},
	}
}

func (m *memLedger) UserRewards(dbx.DBTX) userrewards.Repository { return (*memUserRewards)(m) }
func (m *memLedger) RewardTransactions(dbx.DBTX) rewardtransactions.Repository {
	return (*memTransactions)(m)
}
func (m *memLedger) Rewards(dbx.DBTX) rewards.Repository { return (*memCatalog)(m) }

type memUserRewards memLedger

func (r *memUserRewards) GetByUserID(_ context.Context, userID string) (*models.UserReward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ur, ok := r.balances[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *ur
	return &cp, nil
}

func (r *memUserRewards) Credit(_ context.Context, id, userID string, points int64, now time.Time) (*models.UserReward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.creditErr != nil {
		return nil, r.creditErr
	}
	ur, ok := r.balances[userID]
	if !ok {
		ur = &models.UserReward{ID: id, UserID: userID, CreatedAt: now}
		r.balances[userID] = ur
	} else {
		t := now
		ur.UpdatedAt = &t
	}
	ur.TotalPoints += points
	ur.AvailablePoints += points
	ur.LifetimePointsEarned += points
	cp := *ur
	return &cp, nil
}

func (r *memUserRewards) Debit(_ context.Context, userID string, points int64, now time.Time) (*models.UserReward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ur, ok := r.balances[userID]
	if !ok || ur.AvailablePoints < points {
		return nil, common.ErrorNotEligible
	}
	ur.AvailablePoints -= points
	t := now
	ur.UpdatedAt = &t
	cp := *ur
	return &cp, nil
}

type memTransactions memLedger

func (r *memTransactions) Create(_ context.Context, t *models.RewardTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	cp := *t
	r.txs = append(r.txs, &cp)
	return nil
}

func (r *memTransactions) ListByUserRewardID(_ context.Context, id string) ([]*models.RewardTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*models.RewardTransaction
	for i := len(r.txs) - 1; i >= 0; i-- {
		if r.txs[i].UserRewardID == id {
			cp := *r.txs[i]
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTransactions) Sums(_ context.Context, id string) (models.LedgerSums, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s models.LedgerSums
	for _, t := range r.txs {
		if t.UserRewardID != id {
			continue
		}
		s.Net += t.Points
		switch t.Type {
		case models.TransactionEarned:
			s.Total += t.Points
			s.Lifetime += t.Points
		case models.TransactionAdjusted:
			s.Total += t.Points
		}
	}
	return s, nil
}

type memCatalog memLedger

func (r *memCatalog) Create(_ context.Context, rw *models.Reward) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rw
	r.catalog[rw.ID] = &cp
	return nil
}

func (r *memCatalog) GetByID(_ context.Context, id string) (*models.Reward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rw, ok := r.catalog[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *rw
	return &cp, nil
}

func (r *memCatalog) List(_ context.Context) ([]*models.Reward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Reward
	for _, rw := range r.catalog {
		if rw.IsActive {
			cp := *rw
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memCatalog) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.catalog[id]; !ok {
		return false, nil
	}
	delete(r.catalog, id)
	return true, nil
}

// fakeImages records the calls made to the image store.
type fakeImages struct {
	uploads []string
	err     error
}

func (f *fakeImages) PresignUpload(_ context.Context, rewardID string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	f.uploads = append(f.uploads, rewardID)
	return "rewards/" + rewardID + "/img", "https://put.example/rewards/" + rewardID + "/img", nil
}

func (f *fakeImages) PresignDownload(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://get.example/" + key, nil
}
