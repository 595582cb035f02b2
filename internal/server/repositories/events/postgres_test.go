package events

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var (
	from    = time.Date(2026, 6, 12, 8, 0, 0, 0, time.UTC)
	updated = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
)

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO events .* ON CONFLICT \(slug\) DO UPDATE SET .*`).
		WithArgs("conf", "Conference", "Europe/Riga", from, nil, nil, []byte(`["k1"]`), updated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.Event{
		Slug: "conf", Name: "Conference", Timezone: "Europe/Riga",
		DateFrom: from, ValidKeys: []string{"k1"}, UpdatedAt: updated,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO events`).WillReturnError(errors.New("db is down"))

	err := repo.Upsert(context.Background(), &models.Event{Slug: "conf"})
	assert.ErrorContains(t, err, "failed to upsert event[conf]")
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	to := from.Add(10 * time.Hour)

	rows := sqlmock.NewRows([]string{"slug", "name", "timezone", "date_from", "date_to", "date_admission", "valid_keys", "updated_at"}).
		AddRow("conf", "Conference", "UTC", from, to, nil, []byte(`["k1","k2"]`), updated)
	mock.ExpectQuery(`SELECT .* FROM events WHERE slug = \$1`).WithArgs("conf").WillReturnRows(rows)

	ev, err := repo.Get(context.Background(), "conf")
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, []string{"k1", "k2"}, ev.ValidKeys)
	require.NotNil(t, ev.DateTo)
	assert.True(t, to.Equal(*ev.DateTo))
	assert.Nil(t, ev.DateAdmission)
	assert.True(t, updated.Equal(ev.UpdatedAt))
}

func TestGet_Missing(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM events`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	ev, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, ev)
}

func TestGet_BadKeys(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"slug", "name", "timezone", "date_from", "date_to", "date_admission", "valid_keys", "updated_at"}).
		AddRow("conf", "Conference", "UTC", from, nil, nil, []byte(`{`), updated)
	mock.ExpectQuery(`SELECT .* FROM events`).WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "conf")
	assert.ErrorContains(t, err, "failed to decode keys")
}
