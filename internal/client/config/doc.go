// Package config loads runtime configuration for the scanner.
//
// Sources, later ones override earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. GOPHSCAN_* environment variables.
//  4. Command-line flags.
//
// # JSON schema
//
// Intervals use timex.Duration, so values are either strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "authority_addr": "127.0.0.1:50051",
//	  "event": "democon",
//	  "list_id": 1,
//	  "sync_interval": "1m",
//	  "max_revocation_age": "24h"
//	}
package config
