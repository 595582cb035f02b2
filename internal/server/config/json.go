package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophscan/internal/flagx"
	"github.com/dmitrijs2005/gophscan/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "1h" strings or
// integer nanoseconds; absent keys keep their current values.
type JsonConfig struct {
	GRPCAddr      *string         `json:"grpc_addr"`
	DatabaseDSN   *string         `json:"database_dsn"`
	SecretKey     *string         `json:"secret_key"`
	TokenValidity *timex.Duration `json:"token_validity"`
	PageSize      *int            `json:"page_size"`
	MetricsAddr   *string         `json:"metrics_addr"`
	OTLPEndpoint  *string         `json:"otlp_endpoint"`
	LogLevel      *string         `json:"log_level"`
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

	if jc.GRPCAddr != nil {
		cfg.GRPCAddr = *jc.GRPCAddr
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.TokenValidity != nil {
		cfg.TokenValidity = jc.TokenValidity.Duration
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.MetricsAddr != nil {
		cfg.MetricsAddr = *jc.MetricsAddr
	}
	if jc.OTLPEndpoint != nil {
		cfg.OTLPEndpoint = *jc.OTLPEndpoint
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
