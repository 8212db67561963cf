// Package migrations holds the embedded schema migrations for the aqua database.
package migrations

import "embed"

// Files exposes the compiled-in migration SQL files.
//
//go:embed *.sql
var Files embed.FS
