// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/bakery-be/internal/core/ports"
	"github.com/ammerola/bakery-be/internal/core/services"
	"github.com/ammerola/bakery-be/internal/pkg/logger"
)

// ExportProcessor renders the price list and uploads it to object storage
type ExportProcessor struct {
	store     ports.ItemStore
	storage   ports.ObjectStorage
	keyPrefix string
	logger    *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(store ports.ItemStore, storage ports.ObjectStorage, keyPrefix string, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		store:     store,
		storage:   storage,
		keyPrefix: keyPrefix,
		logger:    logger.With(slog.String("processor", "export")),
	}
}

// ObjectKey is where the export for jobID is stored
func (p *ExportProcessor) ObjectKey(jobID string) string {
	return path.Join(p.keyPrefix, jobID+".xlsx")
}

// ProcessExport handles TypeExportPriceList tasks
func (p *ExportProcessor) ProcessExport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload ExportJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.JobID == "" {
		return fmt.Errorf("export payload has no job id: %w", asynq.SkipRetry)
	}

	ctx = context.WithValue(ctx, logger.ContextKeyJobID, payload.JobID)

	items, err := p.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list bakery items: %w", err)
	}

	data, err := services.RenderPriceList(items)
	if err != nil {
		return fmt.Errorf("failed to render price list: %w", err)
	}

	key := p.ObjectKey(payload.JobID)
	location, err := p.storage.Upload(ctx, key, bytes.NewReader(data), services.PriceListContentType)
	if err != nil {
		return fmt.Errorf("failed to upload price list: %w", err)
	}

	if w := t.ResultWriter(); w != nil {
		result, _ := json.Marshal(ExportJobResult{
			Key:       key,
			Location:  location,
			ItemCount: len(items),
		})
		if _, err := w.Write(result); err != nil {
			p.logger.WarnContext(ctx, "failed to write task result",
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "price list exported",
		slog.String("key", key),
		slog.Int("items", len(items)),
		slog.Duration("duration_ms", time.Since(start)))

	return nil
}
