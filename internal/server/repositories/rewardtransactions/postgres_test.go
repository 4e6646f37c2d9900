package rewardtransactions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mango-services/loyalty-auth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQ = `(?s)^INSERT\s+INTO\s+reward_transactions\s*\(id,\s*user_reward_id,\s*user_id,\s*points,\s*type,\s*description,\s*reference_id,\s*created_at\)\s*VALUES\s*\(\$1,.*\$8\)$`
	listQ   = `(?s)^SELECT\s+id,.*FROM\s+reward_transactions\s+WHERE\s+user_reward_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s+DESC$`
	sumsQ   = `(?s)^SELECT\s+COALESCE\(SUM\(points\)\s+FILTER.*FROM\s+reward_transactions\s+WHERE\s+user_reward_id\s*=\s*\$1$`
)

var at = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate_WithAndWithoutReference(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	ref := "order-7"
	mock.ExpectExec(insertQ).
		WithArgs("t1", "ur-1", "u1", int64(100), "Earned", "signup bonus", sql.NullString{String: ref, Valid: true}, at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertQ).
		WithArgs("t2", "ur-1", "u1", int64(-40), "Redeemed", "mug", nil, at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), &models.RewardTransaction{
		ID: "t1", UserRewardID: "ur-1", UserID: "u1", Points: 100, Type: models.TransactionEarned,
		Description: "signup bonus", ReferenceID: &ref, CreatedAt: at,
	}))
	require.NoError(t, repo.Create(context.Background(), &models.RewardTransaction{
		ID: "t2", UserRewardID: "ur-1", UserID: "u1", Points: -40, Type: models.TransactionRedeemed,
		Description: "mug", CreatedAt: at,
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(insertQ).WillReturnError(errors.New("boom"))

	err := repo.Create(context.Background(), &models.RewardTransaction{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: boom")
}

func TestListByUserRewardID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "user_reward_id", "user_id", "points", "type", "description", "reference_id", "created_at"}).
		AddRow("t2", "ur-1", "u1", int64(-40), "Redeemed", "mug", "reward-9", at.Add(time.Minute)).
		AddRow("t1", "ur-1", "u1", int64(100), "Earned", "signup bonus", nil, at)
	mock.ExpectQuery(listQ).WithArgs("ur-1").WillReturnRows(rows)

	got, err := repo.ListByUserRewardID(context.Background(), "ur-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "t2", got[0].ID)
	assert.Equal(t, models.TransactionRedeemed, got[0].Type)
	require.NotNil(t, got[0].ReferenceID)
	assert.Equal(t, "reward-9", *got[0].ReferenceID)

	assert.Equal(t, int64(100), got[1].Points)
	assert.Nil(t, got[1].ReferenceID)
}

func TestListByUserRewardID_ScanError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "user_reward_id", "user_id", "points", "type", "description", "reference_id", "created_at"}).
		AddRow("t1", "ur-1", "u1", "not-a-number", "Earned", "", nil, at)
	mock.ExpectQuery(listQ).WithArgs("ur-1").WillReturnRows(rows)

	_, err := repo.ListByUserRewardID(context.Background(), "ur-1")
	require.Error(t, err)
}

func TestListByUserRewardID_UnknownType(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "user_reward_id", "user_id", "points", "type", "description", "reference_id", "created_at"}).
		AddRow("t1", "ur-1", "u1", int64(5), "Refunded", "", nil, at)
	mock.ExpectQuery(listQ).WithArgs("ur-1").WillReturnRows(rows)

	_, err := repo.ListByUserRewardID(context.Background(), "ur-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown transaction type "Refunded"`)
}

func TestListByUserRewardID_RowsError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "user_reward_id", "user_id", "points", "type", "description", "reference_id", "created_at"}).
		AddRow("t1", "ur-1", "u1", int64(1), "Earned", "", nil, at).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery(listQ).WithArgs("ur-1").WillReturnRows(rows)

	_, err := repo.ListByUserRewardID(context.Background(), "ur-1")
	require.Error(t, err)
}

func TestSums(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(sumsQ).WithArgs("ur-1").
		WillReturnRows(sqlmock.NewRows([]string{"total", "net", "lifetime"}).AddRow(int64(100), int64(60), int64(100)))

	got, err := repo.Sums(context.Background(), "ur-1")
	require.NoError(t, err)
	assert.Equal(t, models.LedgerSums{Total: 100, Net: 60, Lifetime: 100}, got)
}

func TestSums_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(sumsQ).WithArgs("ur-1").WillReturnError(errors.New("boom"))

	_, err := repo.Sums(context.Background(), "ur-1")
	require.Error(t, err)
}
