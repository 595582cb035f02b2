package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/flagx"
	"github.com/dmitrijs2005/gophscan/internal/timex"
)

// JsonConfig mirrors Config for decoding. Absent keys keep their current
// values.
type JsonConfig struct {
	AuthorityAddr       *string         `json:"authority_addr"`
	DeviceToken         *string         `json:"device_token"`
	DatabasePath        *string         `json:"database_path"`
	Event               *string         `json:"event"`
	ListID              *int64          `json:"list_id"`
	Timezone            *string         `json:"timezone"`
	SyncInterval        *timex.Duration `json:"sync_interval"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	MaxRevocationAge    *timex.Duration `json:"max_revocation_age"`
	MetricsAddr         *string         `json:"metrics_addr"`
	OTLPEndpoint        *string         `json:"otlp_endpoint"`
	LogLevel            *string         `json:"log_level"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *timex.Duration) {
	if src != nil {
		*dst = src.Duration
	}
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	set(&cfg.AuthorityAddr, jc.AuthorityAddr)
	set(&cfg.DeviceToken, jc.DeviceToken)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.Event, jc.Event)
	set(&cfg.ListID, jc.ListID)
	set(&cfg.Timezone, jc.Timezone)
	setDuration(&cfg.SyncInterval, jc.SyncInterval)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval)
	setDuration(&cfg.MaxRevocationAge, jc.MaxRevocationAge)
	set(&cfg.MetricsAddr, jc.MetricsAddr)
	set(&cfg.OTLPEndpoint, jc.OTLPEndpoint)
	set(&cfg.LogLevel, jc.LogLevel)
	return nil
}
