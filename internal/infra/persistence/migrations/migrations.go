// Package migrations embeds the goose SQL migrations of the PostgreSQL schema.
package migrations

import "embed"

// Migrations holds every *.sql migration, applied in version order.
//
//go:embed *.sql
var Migrations embed.FS
