// internal/adapters/db/migrations_test.go
package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/bakery-be/internal/adapters/db"
	"github.com/ammerola/bakery-be/test/helpers"
)

func sqliteConfig(t *testing.T) *db.Config {
	t.Helper()

	cfg := db.DefaultConfig()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "migrate.db")
	return cfg
}

func TestMigrationConfigFor(t *testing.T) {
	tests := []struct {
		name       string
		driver     string
		wantDriver string
		dsnPrefix  string
	}{
		{name: "sqlite", driver: db.DriverSQLite, wantDriver: db.DriverSQLite, dsnPrefix: "data/bakery.db?"},
		{name: "empty_defaults_to_sqlite", driver: "", wantDriver: db.DriverSQLite, dsnPrefix: "data/bakery.db?"},
		{name: "postgres", driver: db.DriverPostgres, wantDriver: db.DriverPostgres, dsnPrefix: "host=localhost port=5432"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := db.DefaultConfig()
			cfg.Driver = tt.driver

			mc := db.MigrationConfigFor(cfg)
			assert.Equal(t, tt.wantDriver, mc.Driver)
			assert.Contains(t, mc.DSN, tt.dsnPrefix)
		})
	}
}

func TestMigrator_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)

	migrator, err := db.NewMigrator(db.MigrationConfigFor(cfg), helpers.TestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { migrator.Close() })

	version, dirty, err := migrator.Version(ctx)
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)

	require.NoError(t, migrator.Up(ctx))
	// Applying again is a no-op
	require.NoError(t, migrator.Up(ctx))

	version, dirty, err = migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	database, err := db.NewDatabase(ctx, cfg, helpers.TestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	var tables int
	err = database.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'bakery_items'").Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 1, tables)

	require.NoError(t, migrator.Down(ctx))

	err = database.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'bakery_items'").Scan(&tables)
	require.NoError(t, err)
	assert.Zero(t, tables)
}

func TestNewMigrator_Errors(t *testing.T) {
	t.Run("nil_config", func(t *testing.T) {
		_, err := db.NewMigrator(nil, helpers.TestLogger())
		assert.Error(t, err)
	})

	t.Run("unsupported_driver", func(t *testing.T) {
		_, err := db.NewMigrator(&db.MigrationConfig{Driver: "mysql"}, helpers.TestLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported migration driver")
	})
}

func TestRunMigrationsWithRetry_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mc := &db.MigrationConfig{Driver: "mysql"}
	err := db.RunMigrationsWithRetry(ctx, mc, helpers.TestLogger(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations cancelled")
}

func TestDatabase_SQLite(t *testing.T) {
	ctx := context.Background()
	database := helpers.SetupSQLiteDB(t)

	assert.Equal(t, db.DriverSQLite, database.Driver())
	require.NoError(t, database.Ping(ctx))

	health := database.Health(ctx)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, db.DriverSQLite, health["driver"])

	t.Run("unsupported_driver", func(t *testing.T) {
		cfg := db.DefaultConfig()
		cfg.Driver = "oracle"
		_, err := db.NewDatabase(ctx, cfg, helpers.TestLogger())
		assert.Error(t, err)
	})
}
