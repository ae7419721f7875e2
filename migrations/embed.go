// Package migrations embeds the versioned schema for every supported driver.
package migrations

import "embed"

// SQLite holds the migrations applied to the embedded sqlite database
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// Postgres holds the migrations applied to a PostgreSQL database
//
//go:embed postgres/*.sql
var Postgres embed.FS
