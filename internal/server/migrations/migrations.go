// Package migrations embeds the authority's PostgreSQL schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
