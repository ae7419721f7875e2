// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ammerola/bakery-be/internal/core/ports"
	"github.com/ammerola/bakery-be/internal/core/services"
)

// ExportHandler serves price list exports
type ExportHandler struct {
	store  ports.ItemStore
	queue  ports.ExportQueue
	logger *slog.Logger
}

// NewExportHandler creates a new export handler. queue may be nil when
// background exports are disabled.
func NewExportHandler(store ports.ItemStore, queue ports.ExportQueue, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		store:  store,
		queue:  queue,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/admin/export/xlsx
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.store.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list bakery items for export",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	data, err := services.RenderPriceList(items)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render price list",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("price_list_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", services.PriceListContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "price list exported",
		slog.Int("total_rows", len(items)),
		slog.String("filename", filename))
}

// QueueExport handles POST /api/v1/admin/export
func (h *ExportHandler) QueueExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.queue == nil {
		h.respondError(w, http.StatusServiceUnavailable, "Background export is disabled")
		return
	}

	jobID, err := h.queue.EnqueueExport(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to queue price list export",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to queue export job")
		return
	}

	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_id":  jobID,
		"status":  "queued",
		"message": "Price list export has been queued for processing",
	})
}

func (h *ExportHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, h.logger, status, data)
}

func (h *ExportHandler) respondError(w http.ResponseWriter, status int, message string) {
	writeError(w, h.logger, status, message)
}
