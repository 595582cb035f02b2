package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestUp_CreatesSchemaAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "scan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Up(ctx, db))
	require.NoError(t, Up(ctx, db))

	for _, table := range []string{
		"events", "valid_keys", "revoked_secrets", "items", "checkin_lists",
		"order_positions", "checkins", "queued_redemption_requests", "sync_state", "local_checkins",
	} {
		assert.True(t, tableExists(t, db, table), table)
	}
}

func TestQueue_UniquePerListSecretDate(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "scan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Up(ctx, db))

	insert := `INSERT INTO queued_redemption_requests (event_slug, list_id, secret, nonce, type, date)
		VALUES ('ev', 1, 's', ?, 'entry', '2026-06-12T10:00:00.000000000Z')`
	_, err = db.Exec(insert, "n1")
	require.NoError(t, err)
	_, err = db.Exec(insert, "n2")
	assert.Error(t, err)
}
