package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings of the scanner.
//
// Durations are time.Duration. A zero MaxRevocationAge never treats the
// revocation cache as stale. An empty Timezone uses the event's own zone.
type Config struct {
	AuthorityAddr       string        `env:"GOPHSCAN_AUTHORITY_ADDR"`
	DeviceToken         string        `env:"GOPHSCAN_DEVICE_TOKEN"`
	DatabasePath        string        `env:"GOPHSCAN_DB"`
	Event               string        `env:"GOPHSCAN_EVENT"`
	ListID              int64         `env:"GOPHSCAN_LIST"`
	Timezone            string        `env:"GOPHSCAN_TIMEZONE"`
	SyncInterval        time.Duration `env:"GOPHSCAN_SYNC_INTERVAL"`
	OnlineCheckInterval time.Duration `env:"GOPHSCAN_ONLINE_CHECK_INTERVAL"`
	MaxRevocationAge    time.Duration `env:"GOPHSCAN_MAX_REVOCATION_AGE"`
	MetricsAddr         string        `env:"GOPHSCAN_METRICS_ADDR"`
	OTLPEndpoint        string        `env:"GOPHSCAN_OTLP_ENDPOINT"`
	LogLevel            string        `env:"GOPHSCAN_LOG_LEVEL"`
}

func (c *Config) LoadDefaults() {
	c.AuthorityAddr = "127.0.0.1:50051"
	c.DatabasePath = "gophscan.db"
	c.SyncInterval = time.Minute
	c.OnlineCheckInterval = 3 * time.Second
	c.MaxRevocationAge = 24 * time.Hour
	c.LogLevel = "info"
}

// Location resolves the timezone override. It returns nil when none is set.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// GOPHSCAN_* environment variables, then flags. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
