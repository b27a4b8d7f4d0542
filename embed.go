package taskbot

import "embed"

// MigrationsFS holds the embedded SQL migrations for the postgres
// store backend.
//
//go:embed migrations
var MigrationsFS embed.FS
