// internal/core/ports/database.go
package ports

import (
	"context"
)

// Database defines the port for the shared database handle, abstracting
// away the concrete driver from handlers that only need health checks.
type Database interface {
	Driver() string
	Ping(ctx context.Context) error
	Health(ctx context.Context) map[string]interface{}
	Close() error
}
