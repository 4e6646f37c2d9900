package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mango-services/loyalty-auth/internal/common"
	"github.com/mango-services/loyalty-auth/internal/logging"
	"github.com/mango-services/loyalty-auth/internal/server/auth"
	"github.com/mango-services/loyalty-auth/internal/server/config"
	"github.com/mango-services/loyalty-auth/internal/server/models"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/repomanager"
	"github.com/mango-services/loyalty-auth/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		JWTIssuer:                    "mango-auth",
		JWTAudience:                  "mango-services",
		AccessTokenValidityDuration:  15 * time.Minute,
		RefreshTokenValidityDuration: 7 * 24 * time.Hour,
	}
}

func newUserService(t *testing.T, db *sql.DB, repos repomanager.AuthRepositories, clock timex.Clock) *UserService {
	t.Helper()
	return NewUserService(db, repos, testConfig(), clock, nil, logging.Discard())
}

// register runs Register against a fresh sqlmock transaction.
func register(t *testing.T, s *UserService, mock sqlmock.Sqlmock, email, password string) *AuthResult {
	t.Helper()
	mock.ExpectBegin()
	mock.ExpectCommit()
	res, err := s.Register(context.Background(), email, password, "Ann", "+15551234567")
	require.NoError(t, err)
	return res
}

func TestRegister_StoresCustomerAndOneRefreshToken(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	s := newUserService(t, db, repos, &timex.FixedClock{T: t0})

	res := register(t, s, mock, "a@x.com", "Passw0rd!")
	require.NoError(t, mock.ExpectationsWereMet())

	assert.NotEmpty(t, res.UserID)
	assert.Equal(t, "a@x.com", res.Email)
	assert.Equal(t, "Ann", res.Name)
	assert.NotEmpty(t, res.AccessToken)

	raw, err := base64.StdEncoding.DecodeString(res.RefreshToken)
	require.NoError(t, err)
	assert.Len(t, raw, 64)

	u, err := repos.users.GetByID(context.Background(), res.UserID)
	require.NoError(t, err)
	assert.Equal(t, common.RoleCustomer, u.Role)
	assert.True(t, u.IsActive)
	assert.False(t, u.EmailConfirmed)
	assert.True(t, auth.VerifyPassword("Passw0rd!", u.PasswordHash, u.Salt))
	assert.Equal(t, t0, u.CreatedAt)

	require.Equal(t, 1, repos.tokens.count())
	rt, err := repos.tokens.Find(context.Background(), res.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, rt.UserID)
	assert.Equal(t, t0.Add(7*24*time.Hour), rt.ExpiresAt)

	claims, err := auth.NewVerifier([]byte("k"), "mango-auth", "mango-services", func() time.Time { return t0 }).
		Verify(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, claims.Subject)
	assert.Equal(t, rt.JwtID, claims.ID)
	assert.Equal(t, common.RoleCustomer, claims.Role)
	assert.Equal(t, "Ann", claims.Name)
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	s := newUserService(t, db, repos, nil)

	register(t, s, mock, "a@x.com", "Passw0rd!")

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.Register(context.Background(), "a@x.com", "other", "Bob", "")
	require.ErrorIs(t, err, common.ErrorConflict)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1, repos.tokens.count())
}

func TestRegister_StoreFailureIsOpaque(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	repos.tokens.createErr = errors.New("disk full")
	s := newUserService(t, db, repos, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.Register(context.Background(), "a@x.com", "p", "Ann", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorConflict)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRegister_RandomSourceFailure(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := NewUserService(db, newFakeAuthRepos(), testConfig(), nil, failingReader{}, logging.Discard())

	_, err := s.Register(context.Background(), "a@x.com", "p", "Ann", "")
	require.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestLogin_AfterRegister(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	s := newUserService(t, db, repos, nil)

	reg := register(t, s, mock, "a@x.com", "Passw0rd!")

	got, err := s.Login(context.Background(), "a@x.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, got.UserID)
	assert.NotEmpty(t, got.AccessToken)
	assert.NotEmpty(t, got.RefreshToken)
	assert.NotEqual(t, reg.RefreshToken, got.RefreshToken)

	// the registration session stays live
	rt, err := repos.tokens.Find(context.Background(), reg.RefreshToken)
	require.NoError(t, err)
	assert.False(t, rt.Used)
	assert.Equal(t, 2, repos.tokens.count())
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	s := newUserService(t, db, repos, nil)

	register(t, s, mock, "a@x.com", "Passw0rd!")
	register(t, s, mock, "off@x.com", "Passw0rd!")
	off, err := repos.users.GetByEmail(context.Background(), "off@x.com")
	require.NoError(t, err)
	repos.users.setActive(off.ID, false)

	tests := []struct {
		name, email, password string
	}{
		{name: "wrong password", email: "a@x.com", password: "wrong"},
		{name: "unknown email", email: "nobody@x.com", password: "Passw0rd!"},
		{name: "inactive account", email: "off@x.com", password: "Passw0rd!"},
		{name: "email is case sensitive", email: "A@x.com", password: "Passw0rd!"},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, common.ErrorUnauthorized)
			messages = append(messages, err.Error())
		})
	}
	for _, m := range messages {
		assert.Equal(t, common.ErrorUnauthorized.Error(), m)
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	repos.users.getErr = errors.New("db down")
	s := newUserService(t, db, repos, nil)

	_, err := s.Login(context.Background(), "a@x.com", "p")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_RotatesAndRejectsReplay(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	clock := &timex.FixedClock{T: t0}
	s := newUserService(t, db, repos, clock)

	reg := register(t, s, mock, "a@x.com", "Passw0rd!")
	clock.Advance(time.Hour)

	mock.ExpectBegin()
	mock.ExpectCommit()
	got, err := s.RefreshToken(context.Background(), reg.AccessToken, reg.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, got.UserID)
	assert.Equal(t, "a@x.com", got.Email)
	assert.NotEqual(t, reg.RefreshToken, got.RefreshToken)
	assert.NotEqual(t, reg.AccessToken, got.AccessToken)

	old, err := repos.tokens.Find(context.Background(), reg.RefreshToken)
	require.NoError(t, err)
	assert.True(t, old.Used)

	_, err = s.RefreshToken(context.Background(), got.AccessToken, reg.RefreshToken)
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	// the rotated token still works
	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = s.RefreshToken(context.Background(), "", got.RefreshToken)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(repos *fakeAuthRepos, rt *models.RefreshToken)
		advance time.Duration
		token   string
	}{
		{name: "unknown token", token: "does-not-exist"},
		{name: "revoked", mutate: func(_ *fakeAuthRepos, rt *models.RefreshToken) { rt.Revoked = true }},
		{name: "used", mutate: func(_ *fakeAuthRepos, rt *models.RefreshToken) { rt.Used = true }},
		{name: "expired", advance: 7*24*time.Hour + time.Second},
		{name: "owner inactive", mutate: func(repos *fakeAuthRepos, rt *models.RefreshToken) {
			repos.users.byID[rt.UserID].IsActive = false
		}},
		{name: "owner gone", mutate: func(repos *fakeAuthRepos, rt *models.RefreshToken) {
			delete(repos.users.byID, rt.UserID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMockDB(t)
			repos := newFakeAuthRepos()
			clock := &timex.FixedClock{T: t0}
			s := newUserService(t, db, repos, clock)

			reg := register(t, s, mock, "a@x.com", "Passw0rd!")
			if tt.mutate != nil {
				tt.mutate(repos, repos.tokens.byToken[reg.RefreshToken])
			}
			clock.Advance(tt.advance)

			token := reg.RefreshToken
			if tt.token != "" {
				token = tt.token
			}

			_, err := s.RefreshToken(context.Background(), reg.AccessToken, token)
			require.ErrorIs(t, err, common.ErrorUnauthorized)
			require.NoError(t, mock.ExpectationsWereMet(), "no transaction is opened for a rejected token")
		})
	}
}

func TestRefreshToken_ExpiryInstantIsStillValid(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	clock := &timex.FixedClock{T: t0}
	s := newUserService(t, db, repos, clock)

	reg := register(t, s, mock, "a@x.com", "Passw0rd!")
	clock.Advance(7 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := s.RefreshToken(context.Background(), "", reg.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshToken_ConcurrentCallsHaveOneWinner(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := newFakeAuthRepos()
	s := newUserService(t, db, repos, nil)

	reg, err := s.Register(context.Background(), "a@x.com", "Passw0rd!", "Ann", "")
	require.NoError(t, err)

	const callers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		unauth  int
		start   = make(chan struct{})
		otherEr []error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.RefreshToken(context.Background(), reg.AccessToken, reg.RefreshToken)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, common.ErrorUnauthorized):
				unauth++
			default:
				otherEr = append(otherEr, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Empty(t, otherEr)
	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, unauth)
	assert.Equal(t, 2, repos.tokens.count())
}

func TestRefreshToken_StoreFailureOnFind(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repos := newFakeAuthRepos()
	repos.tokens.findErr = errors.New("db down")
	s := newUserService(t, db, repos, nil)

	_, err := s.RefreshToken(context.Background(), "", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}
