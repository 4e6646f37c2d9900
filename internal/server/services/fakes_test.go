package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mango-services/loyalty-auth/internal/common"
	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/server/models"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/refreshtokens"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// --- in-memory auth store ---

type memUsers struct {
	mu   sync.Mutex
	byID map[string]*models.User

	createErr error
	getErr    error
}

func (f *memUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return common.ErrorConflict
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *memUsers) setActive(id string, active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[id].IsActive = active
}

type memRefreshTokens struct {
	mu      sync.Mutex
	byToken map[string]*models.RefreshToken

	createErr error
	findErr   error
}

func (f *memRefreshTokens) Create(_ context.Context, t *models.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *t
	f.byToken[t.Token] = &cp
	return nil
}

func (f *memRefreshTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *memRefreshTokens) MarkUsed(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.byToken {
		if t.ID == id && !t.Used && !t.Revoked {
			t.Used = true
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *memRefreshTokens) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byToken)
}

type fakeAuthRepos struct {
	users  *memUsers
	tokens *memRefreshTokens
}

func newFakeAuthRepos() *fakeAuthRepos {
	return &fakeAuthRepos{
		users:  &memUsers{byID: map[string]*models.User{}},
		tokens: &memRefreshTokens{byToken: map[string]*models.RefreshToken{}},
	}
}

func (m *fakeAuthRepos) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeAuthRepos) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.tokens }
