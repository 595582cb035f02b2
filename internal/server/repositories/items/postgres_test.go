package items

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

var (
	updated = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	cols    = []string{"id", "event_slug", "name", "active", "admission", "variations", "updated_at"}
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO items .* ON CONFLICT \(event_slug, id\) DO UPDATE`).
		WithArgs(int64(7), "conf", "Day pass", true, true, []byte(`[{"id":1,"value":"Fri"}]`), updated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.Item{
		ID: 7, EventSlug: "conf", Name: "Day pass", Active: true, Admission: true,
		Variations: []models.Variation{{ID: 1, Value: "Fri"}}, UpdatedAt: updated,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM items WHERE event_slug = \$1 AND id = \$2`).
		WithArgs("conf", int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(7), "conf", "Day pass", true, true, []byte(`null`), updated))

	it, err := repo.Get(context.Background(), "conf", 7)
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.Equal(t, "Day pass", it.Name)
	assert.Empty(t, it.Variations)

	mock.ExpectQuery(`SELECT .* FROM items`).WillReturnError(sql.ErrNoRows)
	it, err = repo.Get(context.Background(), "conf", 8)
	require.NoError(t, err)
	assert.Nil(t, it)
}

func TestList_FilterAndPage(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	since := updated.Add(-time.Hour)

	mock.ExpectQuery(`SELECT .* FROM items WHERE event_slug = \$1 .* ORDER BY id LIMIT \$3 OFFSET \$4`).
		WithArgs("conf", since, 2, 4).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(5), "conf", "A", true, true, []byte(`[]`), updated).
			AddRow(int64(6), "conf", "B", false, true, []byte(`[]`), updated))

	got, err := repo.List(context.Background(), models.Filter{Event: "conf", ModifiedSince: &since, Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(5), got[0].ID)
	assert.False(t, got[1].Active)
}

func TestList_Errors(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM items`).WillReturnError(errors.New("boom"))
	_, err := repo.List(context.Background(), models.Filter{Event: "conf", Limit: 10})
	assert.ErrorContains(t, err, "failed to list items")

	mock.ExpectQuery(`SELECT .* FROM items`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "conf", "A", true, true, []byte(`{`), updated))
	_, err = repo.List(context.Background(), models.Filter{Event: "conf", Limit: 10})
	assert.ErrorContains(t, err, "failed to decode item[1]")
}

func TestCount(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM items`).
		WithArgs("conf", nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.Count(context.Background(), models.Filter{Event: "conf"})
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}
