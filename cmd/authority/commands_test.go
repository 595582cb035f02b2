package main

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
	"github.com/dmitrijs2005/gophscan/internal/server/auth"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return strings.TrimSpace(out.String()), err
}

func TestRun_Usage(t *testing.T) {
	_, err := runCmd(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "-d", "memory", "launch")
	assert.ErrorContains(t, err, `unknown command "launch"`)
}

func TestToken(t *testing.T) {
	tok, err := runCmd(t, "-s", "k1", "token", "--device", "gate-1", "--events", "conf,expo")
	require.NoError(t, err)

	claims, err := auth.ParseToken(tok, []byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, "gate-1", claims.DeviceID)
	assert.Equal(t, []string{"conf", "expo"}, claims.Events)
	assert.NotNil(t, claims.ExpiresAt)

	tok, err = runCmd(t, "-s", "k1", "token", "--device", "gate-2", "--validity", "0s")
	require.NoError(t, err)
	claims, err = auth.ParseToken(tok, []byte("k1"))
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)

	_, err = runCmd(t, "token")
	assert.ErrorContains(t, err, "--device")
}

func TestKeygenAndMint(t *testing.T) {
	key := filepath.Join(t.TempDir(), "key.pem")

	pub, err := runCmd(t, "keygen", "--out", key)
	require.NoError(t, err)
	pk, err := ticket.ParsePublicKey(pub)
	require.NoError(t, err)

	secret, err := runCmd(t, "mint", "--key", key, "--item", "7", "--variation", "2",
		"--seed", "abc", "--valid-until", "2026-06-14T00:00:00Z")
	require.NoError(t, err)

	_, err = ticket.Verify(secret, nil)
	assert.ErrorIs(t, err, ticket.ErrSignature)

	st, err := ticket.Verify(secret, []ed25519.PublicKey{pk})
	require.NoError(t, err)
	assert.Equal(t, "abc", st.Seed)
	assert.Equal(t, int64(7), st.ItemID)
	assert.Equal(t, int64(2), st.VariationID)
	require.NotNil(t, st.ValidUntil)
	assert.Equal(t, 2026, st.ValidUntil.Year())

	random, err := runCmd(t, "mint", "--key", key, "--item", "7")
	require.NoError(t, err)
	assert.NotEqual(t, secret, random)

	_, err = runCmd(t, "mint", "--key", key)
	assert.ErrorContains(t, err, "--item")
	_, err = runCmd(t, "mint", "--key", key, "--item", "7", "--valid-from", "monday")
	assert.ErrorContains(t, err, "--valid-from")
}

func TestImportAndRevoke_Memory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"event": {"slug": "conf", "name": "Conference", "timezone": "UTC"},
		"items": [{"id": 7, "name": "Day pass", "active": true, "admission": true}],
		"checkin_lists": [{"id": 1, "name": "Main", "all_products": true}],
		"positions": [{"id": 1, "order": "A1", "status": "p", "secret": "s1", "item": 7}]
	}`), 0o600))

	out, err := runCmd(t, "-d", "memory", "import", path)
	require.NoError(t, err)
	assert.Equal(t, "imported conf: 1 items, 1 lists, 1 positions, 0 revoked", out)

	_, err = runCmd(t, "-d", "memory", "import")
	assert.Error(t, err)

	_, err = runCmd(t, "-d", "memory", "revoke", "--event", "conf")
	assert.ErrorContains(t, err, "--secret")
}
