// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ammerola/bakery-be/internal/core/ports"
)

const (
	TypeExportPriceList = "pricelist:export"
)

// ExportJobPayload represents the payload for price list export jobs
type ExportJobPayload struct {
	JobID       string    `json:"job_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// ExportJobResult is written to the task result on completion
type ExportJobResult struct {
	Key       string `json:"key"`
	Location  string `json:"location"`
	ItemCount int    `json:"item_count"`
}

// NewExportTask builds the asynq task for payload
func NewExportTask(payload ExportJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export payload: %w", err)
	}
	return asynq.NewTask(TypeExportPriceList, data), nil
}

// TaskEnqueuer is the part of *asynq.Client used to schedule jobs
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueConfig holds the asynq options of scheduled exports
type QueueConfig struct {
	Queue     string
	MaxRetry  int
	Timeout   time.Duration
	Retention time.Duration
}

// ExportQueue schedules price list exports on asynq
type ExportQueue struct {
	client TaskEnqueuer
	config QueueConfig
	logger *slog.Logger
}

var _ ports.ExportQueue = (*ExportQueue)(nil)

// NewExportQueue creates an export queue backed by client
func NewExportQueue(client TaskEnqueuer, config QueueConfig, logger *slog.Logger) *ExportQueue {
	if config.Queue == "" {
		config.Queue = "default"
	}
	return &ExportQueue{
		client: client,
		config: config,
		logger: logger.With(slog.String("component", "export_queue")),
	}
}

// EnqueueExport schedules an export and returns its job id
func (q *ExportQueue) EnqueueExport(ctx context.Context) (string, error) {
	jobID := uuid.New().String()

	task, err := NewExportTask(ExportJobPayload{
		JobID:       jobID,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	opts := []asynq.Option{
		asynq.TaskID(jobID),
		asynq.Queue(q.config.Queue),
		asynq.MaxRetry(q.config.MaxRetry),
	}
	if q.config.Timeout > 0 {
		opts = append(opts, asynq.Timeout(q.config.Timeout))
	}
	if q.config.Retention > 0 {
		opts = append(opts, asynq.Retention(q.config.Retention))
	}

	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue export: %w", err)
	}

	q.logger.InfoContext(ctx, "export enqueued",
		slog.String("job_id", info.ID),
		slog.String("queue", info.Queue))

	return info.ID, nil
}
