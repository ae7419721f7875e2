// internal/adapters/db/database.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/ammerola/bakery-be/internal/core/ports"
	"github.com/ammerola/bakery-be/internal/pkg/config"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver string

	// SQLite
	SQLitePath  string
	BusyTimeout time.Duration

	// PostgreSQL
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string

	MaxConnections     int
	MaxIdleConnections int
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	ConnectTimeout     time.Duration
	EnableQueryLogging bool
}

// DefaultConfig returns default database configuration
func DefaultConfig() *Config {
	return &Config{
		Driver:             DriverSQLite,
		SQLitePath:         "data/bakery.db",
		BusyTimeout:        5 * time.Second,
		Host:               "localhost",
		Port:               "5432",
		User:               "bakery",
		Password:           "bakery_dev",
		Database:           "bakery",
		SSLMode:            "disable",
		MaxConnections:     10,
		MaxIdleConnections: 5,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: false,
	}
}

// ConfigFrom maps the application database settings onto a driver config
func ConfigFrom(c config.DatabaseConfig) *Config {
	return &Config{
		Driver:             c.Driver,
		SQLitePath:         c.SQLitePath,
		BusyTimeout:        c.BusyTimeout,
		Host:               c.Host,
		Port:               c.Port,
		User:               c.User,
		Password:           c.Password,
		Database:           c.Name,
		SSLMode:            c.SSLMode,
		MaxConnections:     c.MaxConnections,
		MaxIdleConnections: c.MaxIdleConnections,
		MaxConnLifetime:    c.MaxConnLifetime,
		MaxConnIdleTime:    c.MaxConnIdleTime,
		ConnectTimeout:     c.ConnectTimeout,
		EnableQueryLogging: c.EnableQueryLogging,
	}
}

// SQLiteDSN returns the data source name for the sqlite driver
func (c *Config) SQLiteDSN() string {
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		c.SQLitePath, c.BusyTimeout.Milliseconds())
}

// PostgresDSN returns the keyword/value connection string for pgx
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.Host, c.Port, c.User, c.Password,
		c.Database, c.SSLMode, int(c.ConnectTimeout.Seconds()),
	)
}

// Database is the process-wide handle to the bakery table storage
type Database struct {
	db     *sql.DB
	driver string
	config *Config
	logger *slog.Logger
}

var _ ports.Database = (*Database)(nil)

// NewDatabase opens and verifies a connection pool for the configured driver
func NewDatabase(ctx context.Context, config *Config, logger *slog.Logger) (*Database, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		sqlDB *sql.DB
		err   error
	)

	switch config.Driver {
	case DriverSQLite, "":
		sqlDB, err = openSQLite(config)
	case DriverPostgres:
		sqlDB, err = openPostgres(config, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := NewDatabaseFromDB(sqlDB, config.Driver, logger)
	db.config = config

	logger.Info("database connection established",
		slog.String("driver", db.driver),
		slog.String("database", db.name()),
	)

	return db, nil
}

// NewDatabaseFromDB wraps an already opened *sql.DB
func NewDatabaseFromDB(sqlDB *sql.DB, driver string, logger *slog.Logger) *Database {
	if driver == "" {
		driver = DriverSQLite
	}
	return &Database{
		db:     sqlDB,
		driver: driver,
		config: DefaultConfig(),
		logger: logger,
	}
}

func openSQLite(config *Config) (*sql.DB, error) {
	if dir := filepath.Dir(config.SQLitePath); dir != "." && config.SQLitePath != ":memory:" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", config.SQLiteDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// sqlite allows a single writer; one connection serialises every statement
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return sqlDB, nil
}

func openPostgres(config *Config, logger *slog.Logger) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(config.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	if config.EnableQueryLogging {
		connConfig.Tracer = &tracelog.TraceLog{
			Logger:   newPgxLogger(logger),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	sqlDB := stdlib.OpenDB(*connConfig)
	sqlDB.SetMaxOpenConns(config.MaxConnections)
	sqlDB.SetMaxIdleConns(config.MaxIdleConnections)
	sqlDB.SetConnMaxLifetime(config.MaxConnLifetime)
	sqlDB.SetConnMaxIdleTime(config.MaxConnIdleTime)

	return sqlDB, nil
}

func (db *Database) name() string {
	if db.driver == DriverPostgres {
		return db.config.Database
	}
	return db.config.SQLitePath
}

// DB returns the underlying *sql.DB
func (db *Database) DB() *sql.DB {
	return db.db
}

// Driver returns the database driver name
func (db *Database) Driver() string {
	return db.driver
}

// Builder returns a statement builder using the driver's placeholder format
func (db *Database) Builder() squirrel.StatementBuilderType {
	if db.driver == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Close closes all database connections
func (db *Database) Close() error {
	if err := db.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	db.logger.Info("database connections closed")
	return nil
}

// Ping verifies database connectivity
func (db *Database) Ping(ctx context.Context) error {
	return db.db.PingContext(ctx)
}

// Health returns database health information
func (db *Database) Health(ctx context.Context) map[string]interface{} {
	stats := db.db.Stats()
	health := map[string]interface{}{
		"status":           "healthy",
		"driver":           db.driver,
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"max_open":         stats.MaxOpenConnections,
		"wait_count":       stats.WaitCount,
		"wait_duration":    stats.WaitDuration.String(),
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*2)
	defer cancel()

	var result int
	if err := db.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		health["status"] = "unhealthy"
		health["error"] = err.Error()
	}

	return health
}

// Transaction executes a function within a database transaction
func (db *Database) Transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx failed: %v, rollback failed: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// pgxLogger adapts slog for pgx logging
type pgxLogger struct {
	logger *slog.Logger
}

func newPgxLogger(logger *slog.Logger) *pgxLogger {
	return &pgxLogger{
		logger: logger.With(slog.String("component", "pgx")),
	}
}

func (l *pgxLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]interface{}) {
	attrs := make([]slog.Attr, 0, len(data))
	for k, v := range data {
		attrs = append(attrs, slog.Any(k, v))
	}

	switch level {
	case tracelog.LogLevelError:
		l.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	case tracelog.LogLevelWarn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	case tracelog.LogLevelInfo:
		l.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	default:
		l.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
	}
}
