// Package migrations holds the registry database schema applied by goose.
package migrations

import "embed"

// FS contains the goose SQL migrations.
//
//go:embed *.sql
var FS embed.FS
