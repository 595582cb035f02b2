package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.AuthorityAddr)
	assert.Equal(t, "gophscan.db", c.DatabasePath)
	assert.Equal(t, time.Minute, c.SyncInterval)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 24*time.Hour, c.MaxRevocationAge)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"authority_addr": "json:1",
		"event":          "json-event",
		"list_id":        3,
		"sync_interval":  "2m",
	})
	t.Setenv("GOPHSCAN_EVENT", "env-event")
	t.Setenv("GOPHSCAN_DEVICE_TOKEN", "env-token")

	cfg, err := LoadConfig([]string{"-c", path, "-e", "flag-event", "-r", "0s"})
	require.NoError(t, err)

	assert.Equal(t, "json:1", cfg.AuthorityAddr)
	assert.Equal(t, int64(3), cfg.ListID)
	assert.Equal(t, 2*time.Minute, cfg.SyncInterval)
	assert.Equal(t, "env-token", cfg.DeviceToken)
	assert.Equal(t, "flag-event", cfg.Event)
	assert.Zero(t, cfg.MaxRevocationAge)
	assert.Equal(t, "gophscan.db", cfg.DatabasePath)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-c", "/does/not/exist.json"})
	assert.Error(t, err)

	t.Setenv("GOPHSCAN_LIST", "not-a-number")
	_, err = LoadConfig(nil)
	assert.Error(t, err)
}

func TestConfig_Location(t *testing.T) {
	c := Config{}
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Nil(t, loc)

	c.Timezone = "UTC"
	loc, err = c.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	c.Timezone = "Nowhere/Special"
	_, err = c.Location()
	assert.Error(t, err)
}
