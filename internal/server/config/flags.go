package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophscan/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-s", "-t", "-p", "-m", "-o", "-v"}

// ConfigFlags lists every flag LoadConfig consumes, including -c/-config,
// so subcommands can strip them before parsing their own.
func ConfigFlags() []string {
	return append([]string{"-c", "-config", "--config"}, knownFlags...)
}

// parseFlags overlays Config with the authority flags. Unknown arguments,
// such as subcommand flags, are left alone.
//
//	-a string    gRPC bind address
//	-d string    PostgreSQL DSN
//	-s string    device token secret
//	-t duration  device token validity
//	-p int       listing page size
//	-m string    metrics listen address
//	-o string    OTLP/HTTP trace endpoint
//	-v string    log level
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("authority", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.GRPCAddr, "a", cfg.GRPCAddr, "gRPC bind address")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "device token secret")
	fs.DurationVar(&cfg.TokenValidity, "t", cfg.TokenValidity, "device token validity")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "listing page size")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")
	fs.StringVar(&cfg.OTLPEndpoint, "o", cfg.OTLPEndpoint, "OTLP/HTTP trace endpoint")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
