// Package migrations embeds the goose migrations for the secure store's
// SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
