package checkinlists

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

var (
	updated = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	cols    = []string{"id", "event_slug", "name", "all_products", "limit_products", "include_pending",
		"allow_multiple_entries", "allow_entry_after_exit", "rules", "updated_at"}
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestUpsert_RulesNullWhenEmpty(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO checkin_lists .* ON CONFLICT \(event_slug, id\) DO UPDATE`).
		WithArgs(int64(1), "conf", "Main", false, []byte(`[7,8]`), false, false, true, nil, updated).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO checkin_lists`).
		WithArgs(int64(2), "conf", "VIP", true, []byte(`null`), false, true, true, []byte(`{"==":[1,1]}`), updated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, &models.CheckInList{
		ID: 1, EventSlug: "conf", Name: "Main", LimitProducts: []int64{7, 8},
		AllowEntryAfterExit: true, UpdatedAt: updated,
	}))
	require.NoError(t, repo.Upsert(ctx, &models.CheckInList{
		ID: 2, EventSlug: "conf", Name: "VIP", AllProducts: true, AllowMultipleEntries: true,
		AllowEntryAfterExit: true, Rules: json.RawMessage(`{"==":[1,1]}`), UpdatedAt: updated,
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM checkin_lists WHERE event_slug = \$1 AND id = \$2`).
		WithArgs("conf", int64(2)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), "conf", "VIP", true, []byte(`[]`), true, false, false, []byte(`{"==":[1,1]}`), updated))

	l, err := repo.Get(context.Background(), "conf", 2)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.True(t, l.IncludePending)
	assert.JSONEq(t, `{"==":[1,1]}`, string(l.Rules))

	mock.ExpectQuery(`SELECT .* FROM checkin_lists`).WillReturnError(sql.ErrNoRows)
	l, err = repo.Get(context.Background(), "conf", 3)
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestListAndCount(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM checkin_lists .* ORDER BY id LIMIT \$3 OFFSET \$4`).
		WithArgs("conf", nil, 50, 0).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(1), "conf", "Main", true, []byte(`[]`), false, false, true, nil, updated))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM checkin_lists`).
		WithArgs("conf", nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	f := models.Filter{Event: "conf", Limit: 50}
	got, err := repo.List(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Rules)

	n, err := repo.Count(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
