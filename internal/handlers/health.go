// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"slices"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	redis_a "github.com/ammerola/bakery-be/internal/adapters/redis_adapter"
	"github.com/ammerola/bakery-be/internal/core/ports"
	"github.com/ammerola/bakery-be/internal/pkg/config"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
)

// QueueInspector reports task queue state; *asynq.Inspector implements it
type QueueInspector interface {
	Queues() ([]string, error)
	GetQueueInfo(queue string) (*asynq.QueueInfo, error)
	Servers() ([]*asynq.ServerInfo, error)
}

// healthCheck checks one dependency and returns its details
type healthCheck func(ctx context.Context) (map[string]interface{}, error)

// HealthHandler reports whether the listing can be served
type HealthHandler struct {
	db      ports.Database
	store   ports.ItemStore
	redis   *redis.Client
	queue   QueueInspector
	config  *config.Config
	logger  *slog.Logger
	started time.Time
}

// NewHealthHandler creates a new health handler. The redis client and
// queue inspector are optional.
func NewHealthHandler(
	database ports.Database,
	store ports.ItemStore,
	redisClient *redis.Client,
	queue QueueInspector,
	cfg *config.Config,
	logger *slog.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:      database,
		store:   store,
		redis:   redisClient,
		queue:   queue,
		config:  cfg,
		logger:  logger.With(slog.String("handler", "health")),
		started: time.Now(),
	}
}

// HealthStatus represents the health status of the application
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	Runtime     RuntimeInfo            `json:"runtime"`
}

// ServiceInfo represents the status of a service dependency
type ServiceInfo struct {
	Status       string                 `json:"status"`
	Message      string                 `json:"message,omitempty"`
	ResponseTime string                 `json:"response_time,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// RuntimeInfo is a small snapshot of the process
type RuntimeInfo struct {
	GoVersion   string `json:"go_version"`
	Goroutines  int    `json:"goroutines"`
	HeapAllocMB uint64 `json:"heap_alloc_mb"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := HealthStatus{
		Status:      statusHealthy,
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.started).Round(time.Second).String(),
		Timestamp:   time.Now(),
		Services:    make(map[string]ServiceInfo),
		Runtime:     runtimeInfo(),
	}

	for name, check := range h.checks() {
		info := h.run(ctx, name, check)
		health.Services[name] = info
		if info.Status != statusHealthy {
			health.Status = statusDegraded
		}
	}

	statusCode := http.StatusOK
	if health.Status != statusHealthy {
		statusCode = http.StatusServiceUnavailable
	}
	h.respond(ctx, w, statusCode, health)
}

// Readiness handles GET /ready. The listing is ready once the item
// table answers; redis only gates readiness when it is configured.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := true
	details := make(map[string]string)

	if _, err := h.store.Count(ctx); err != nil {
		ready = false
		details["database"] = "not ready"
	} else {
		details["database"] = "ready"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			ready = false
			details["redis"] = "not ready"
		} else {
			details["redis"] = "ready"
		}
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	h.respond(ctx, w, statusCode, map[string]interface{}{
		"ready":   ready,
		"details": details,
	})
}

func (h *HealthHandler) checks() map[string]healthCheck {
	checks := map[string]healthCheck{"database": h.checkDatabase}
	if h.redis != nil {
		checks["redis"] = h.checkRedis
	}
	if h.queue != nil {
		checks["export_queue"] = h.checkExportQueue
	}
	return checks
}

func (h *HealthHandler) run(ctx context.Context, name string, check healthCheck) ServiceInfo {
	start := time.Now()
	details, err := check(ctx)

	info := ServiceInfo{
		Status:       statusHealthy,
		ResponseTime: time.Since(start).String(),
		Details:      details,
	}
	if err != nil {
		info.Status = statusUnhealthy
		info.Message = err.Error()
		h.logger.ErrorContext(ctx, "health check failed",
			slog.String("service", name),
			slog.String("error", err.Error()))
	}
	return info
}

// checkDatabase pings the database and counts the listed items
func (h *HealthHandler) checkDatabase(ctx context.Context) (map[string]interface{}, error) {
	if err := h.db.Ping(ctx); err != nil {
		return nil, err
	}

	details := map[string]interface{}{"driver": h.db.Driver()}
	for k, v := range h.db.Health(ctx) {
		details[k] = v
	}

	count, err := h.store.Count(ctx)
	if err != nil {
		return details, fmt.Errorf("failed to count bakery items: %w", err)
	}
	details["bakery_items"] = count

	return details, nil
}

// checkRedis pings redis and reports whether a menu is cached
func (h *HealthHandler) checkRedis(ctx context.Context) (map[string]interface{}, error) {
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	cached, err := h.redis.Exists(ctx, redis_a.MenuKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to look up cached menu: %w", err)
	}

	return map[string]interface{}{
		"menu_cached": cached == 1,
		"total_conns": h.redis.PoolStats().TotalConns,
	}, nil
}

// checkExportQueue reports the backlog of the price list export queue.
// The queue only exists in redis after the first export is enqueued.
func (h *HealthHandler) checkExportQueue(ctx context.Context) (map[string]interface{}, error) {
	name := h.config.Export.Queue

	queues, err := h.queue.Queues()
	if err != nil {
		return nil, err
	}

	details := map[string]interface{}{"queue": name}
	if slices.Contains(queues, name) {
		qInfo, err := h.queue.GetQueueInfo(name)
		if err != nil {
			return details, fmt.Errorf("failed to inspect queue %s: %w", name, err)
		}
		details["pending"] = qInfo.Pending
		details["active"] = qInfo.Active
		details["retry"] = qInfo.Retry
		details["archived"] = qInfo.Archived
	} else {
		details["pending"] = 0
	}

	if servers, err := h.queue.Servers(); err == nil {
		details["workers"] = len(servers)
	}

	return details, nil
}

func (h *HealthHandler) respond(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response",
			slog.String("error", err.Error()))
	}
}

func runtimeInfo() RuntimeInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return RuntimeInfo{
		GoVersion:   runtime.Version(),
		Goroutines:  runtime.NumGoroutine(),
		HeapAllocMB: mem.HeapAlloc / 1024 / 1024,
	}
}
