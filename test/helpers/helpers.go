// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/bakery-be/internal/adapters/db"
	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupSQLiteDB creates a migrated SQLite database in a temp directory
func SetupSQLiteDB(t testing.TB) *db.Database {
	t.Helper()

	dbConfig := db.DefaultConfig()
	dbConfig.Driver = db.DriverSQLite
	dbConfig.SQLitePath = filepath.Join(t.TempDir(), "bakery.db")

	ctx := context.Background()
	err := db.RunMigrationsWithRetry(ctx, db.MigrationConfigFor(dbConfig), TestLogger(), 1)
	require.NoError(t, err, "Could not run sqlite migrations")

	database, err := db.NewDatabase(ctx, dbConfig, TestLogger())
	require.NoError(t, err, "Could not open sqlite database")

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_bakery",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Driver:             db.DriverPostgres,
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_bakery",
		SSLMode:            "disable",
		MaxConnections:     5,
		MaxIdleConnections: 2,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	t.Cleanup(func() {
		database.Close()
	})

	err = db.RunMigrationsWithRetry(context.Background(), db.MigrationConfigFor(dbConfig), TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t testing.TB) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return mock, sqlDB
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Driver:             "sqlite",
			SQLitePath:         filepath.Join(os.TempDir(), "bakery-test.db"),
			BusyTimeout:        5 * time.Second,
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_bakery",
			SSLMode:            "disable",
			MaxConnections:     10,
			MaxIdleConnections: 2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			PoolSize: 10,
			MenuTTL:  time.Minute,
		},
		Export: config.ExportConfig{
			Queue:       "exports",
			Concurrency: 1,
			MaxRetry:    1,
			Timeout:     time.Minute,
			S3Bucket:    "test-exports",
			S3Region:    "us-east-1",
			KeyPrefix:   "exports",
		},
		Secrets: config.SecretsConfig{
			Provider: "env",
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestBakeryItem creates a test bakery item
func CreateTestBakeryItem(overrides ...func(*domain.BakeryItem)) *domain.BakeryItem {
	item := &domain.BakeryItem{
		Name:        "Croissant",
		Description: "Buttery",
		Price:       decimal.NewFromInt(150),
		Contact:     "0712345678",
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// NewTestDraft creates a valid draft for a new entry
func NewTestDraft(overrides ...func(*domain.Draft)) domain.Draft {
	draft := domain.Draft{
		Name:        "Croissant",
		Description: "Buttery",
		Price:       "150",
		Contact:     "0712345678",
	}

	for _, override := range overrides {
		override(&draft)
	}

	return draft
}

// CreateTestDrafts creates count distinct valid drafts
func CreateTestDrafts(count int) []domain.Draft {
	pastries := []string{"Croissant", "Baguette", "Eclair", "Macaron", "Brioche"}

	drafts := make([]domain.Draft, count)
	for i := 0; i < count; i++ {
		drafts[i] = NewTestDraft(func(d *domain.Draft) {
			d.Name = fmt.Sprintf("%s %d", pastries[i%len(pastries)], i+1)
			d.Price = decimal.NewFromInt(int64(50 + i*10)).String()
		})
	}

	return drafts
}

// CompareBakeryItems compares two bakery items ignoring decimal representation
func CompareBakeryItems(t *testing.T, expected, actual domain.BakeryItem) {
	t.Helper()

	require.Equal(t, expected.ID, actual.ID)
	require.Equal(t, expected.Name, actual.Name)
	require.Equal(t, expected.Description, actual.Description)
	require.True(t, expected.Price.Equal(actual.Price),
		"price: expected %s, got %s", expected.Price, actual.Price)
	require.Equal(t, expected.Contact, actual.Contact)
}

// TruncateItems empties the bakery_items table and resets its id sequence
func TruncateItems(t *testing.T, database *db.Database) {
	t.Helper()

	ctx := context.Background()
	var statements []string
	if database.Driver() == db.DriverPostgres {
		statements = []string{"TRUNCATE TABLE bakery_items RESTART IDENTITY"}
	} else {
		statements = []string{
			"DELETE FROM bakery_items",
			"DELETE FROM sqlite_sequence WHERE name = 'bakery_items'",
		}
	}

	for _, stmt := range statements {
		_, err := database.DB().ExecContext(ctx, stmt)
		require.NoError(t, err, "Failed to truncate: %s", stmt)
	}
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
