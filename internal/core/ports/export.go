// internal/core/ports/export.go
package ports

import (
	"context"
	"io"
)

// ExportQueue schedules asynchronous price list exports
type ExportQueue interface {
	// EnqueueExport schedules an export and returns its job id
	EnqueueExport(ctx context.Context) (string, error)
}

// ObjectStorage stores exported files
type ObjectStorage interface {
	// Upload stores body under key and returns the object location
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
