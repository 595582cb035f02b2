package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-d", "-e", "-l", "-z", "-s", "-i", "-r", "-m", "-o", "-v"}

// parseFlags overlays Config with the scanner's flags. Other arguments on
// the command line are ignored.
//
//	-a string    authority address
//	-t string    device token
//	-d string    database file
//	-e string    event slug
//	-l int       check-in list id
//	-z string    timezone override
//	-s duration  background sync interval
//	-i int       online check interval in seconds
//	-r duration  max revocation list age, 0 disables
//	-m string    metrics listen address
//	-o string    OTLP/HTTP trace endpoint
//	-v string    log level
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("scanner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.AuthorityAddr, "a", cfg.AuthorityAddr, "authority address")
	fs.StringVar(&cfg.DeviceToken, "t", cfg.DeviceToken, "device token")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file")
	fs.StringVar(&cfg.Event, "e", cfg.Event, "event slug")
	fs.Int64Var(&cfg.ListID, "l", cfg.ListID, "check-in list id")
	fs.StringVar(&cfg.Timezone, "z", cfg.Timezone, "timezone override")
	fs.DurationVar(&cfg.SyncInterval, "s", cfg.SyncInterval, "sync interval")
	onlineCheck := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.DurationVar(&cfg.MaxRevocationAge, "r", cfg.MaxRevocationAge, "max revocation list age")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")
	fs.StringVar(&cfg.OTLPEndpoint, "o", cfg.OTLPEndpoint, "OTLP/HTTP trace endpoint")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheck) * time.Second
		}
	})
	return nil
}
