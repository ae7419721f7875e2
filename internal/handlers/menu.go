// internal/handlers/menu.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
)

// MenuHandler serves the buyer screen over HTTP
type MenuHandler struct {
	buyer  ports.BuyerController
	cache  ports.MenuCache
	logger *slog.Logger
}

// NewMenuHandler creates a new menu handler. cache may be nil.
func NewMenuHandler(buyer ports.BuyerController, cache ports.MenuCache, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		buyer:  buyer,
		cache:  cache,
		logger: logger.With(slog.String("handler", "menu")),
	}
}

// MenuResponse is the buyer's view of the listed items
type MenuResponse struct {
	Items []domain.BakeryItem `json:"items"`
	Count int                 `json:"count"`
}

// GetMenu handles GET /api/v1/menu
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.cache != nil {
		items, err := h.cache.GetMenu(ctx)
		if err == nil {
			w.Header().Set("X-Cache", "HIT")
			h.respondJSON(w, http.StatusOK, MenuResponse{Items: items, Count: len(items)})
			return
		}
		if !errors.Is(err, ports.ErrMenuNotCached) {
			h.logger.WarnContext(ctx, "menu cache unavailable",
				slog.String("error", err.Error()))
		}
	}

	if err := h.buyer.Refresh(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to refresh menu",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load menu")
		return
	}

	items := h.buyer.Items()

	if h.cache != nil {
		if err := h.cache.SetMenu(ctx, items); err != nil {
			h.logger.WarnContext(ctx, "failed to cache menu",
				slog.String("error", err.Error()))
		}
		w.Header().Set("X-Cache", "MISS")
	}

	h.respondJSON(w, http.StatusOK, MenuResponse{Items: items, Count: len(items)})
}

func (h *MenuHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, h.logger, status, data)
}

func (h *MenuHandler) respondError(w http.ResponseWriter, status int, message string) {
	writeError(w, h.logger, status, message)
}
