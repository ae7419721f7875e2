// internal/handlers/items.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
)

// ItemsHandler serves the admin screen over HTTP
type ItemsHandler struct {
	admin  ports.AdminController
	store  ports.ItemStore
	cache  ports.MenuCache
	logger *slog.Logger
}

// NewItemsHandler creates a new admin items handler. cache may be nil.
func NewItemsHandler(admin ports.AdminController, store ports.ItemStore, cache ports.MenuCache, logger *slog.Logger) *ItemsHandler {
	return &ItemsHandler{
		admin:  admin,
		store:  store,
		cache:  cache,
		logger: logger.With(slog.String("handler", "items")),
	}
}

// AdminSnapshot is the admin screen state
type AdminSnapshot struct {
	Items []domain.BakeryItem `json:"items"`
	Form  domain.FormState    `json:"form"`
}

// FormResponse carries the draft loaded into the admin form
type FormResponse struct {
	Draft domain.Draft     `json:"draft"`
	Form  domain.FormState `json:"form"`
}

// ListItems handles GET /api/v1/admin/items
func (h *ItemsHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.snapshot())
}

// GetItem handles GET /api/v1/admin/items/{id}
func (h *ItemsHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseItemID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Bakery item not found")
			return
		}

		h.logger.ErrorContext(ctx, "failed to get bakery item",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve bakery item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// CreateItem handles POST /api/v1/admin/items
func (h *ItemsHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var draft domain.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	draft.ID = nil

	h.submit(w, r, draft, http.StatusCreated)
}

// UpdateItem handles PUT /api/v1/admin/items/{id}
func (h *ItemsHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var draft domain.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	draft.ID = &id

	h.submit(w, r, draft, http.StatusOK)
}

// DeleteItem handles DELETE /api/v1/admin/items/{id}
func (h *ItemsHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseItemID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.admin.Remove(ctx, domain.BakeryItem{ID: id}); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove bakery item",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to remove bakery item")
		return
	}

	h.invalidateMenu(ctx)
	h.respondJSON(w, http.StatusOK, h.snapshot())
}

// EditItem handles POST /api/v1/admin/items/{id}/edit
func (h *ItemsHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	for _, item := range h.admin.Items() {
		if item.ID == id {
			draft := h.admin.Edit(item)
			h.respondJSON(w, http.StatusOK, FormResponse{Draft: draft, Form: h.admin.FormState()})
			return
		}
	}

	h.respondError(w, http.StatusNotFound, "Bakery item not found")
}

// GetForm handles GET /api/v1/admin/form
func (h *ItemsHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"form": h.admin.FormState(),
	})
}

// ResetForm handles POST /api/v1/admin/form/reset
func (h *ItemsHandler) ResetForm(w http.ResponseWriter, r *http.Request) {
	draft := h.admin.NewEntry()
	h.respondJSON(w, http.StatusOK, FormResponse{Draft: draft, Form: h.admin.FormState()})
}

func (h *ItemsHandler) submit(w http.ResponseWriter, r *http.Request, draft domain.Draft, status int) {
	ctx := r.Context()

	if err := h.admin.Submit(ctx, draft); err != nil {
		if msg, ok := validationMessage(err); ok {
			h.respondError(w, http.StatusBadRequest, msg)
			return
		}

		h.logger.ErrorContext(ctx, "failed to submit bakery item",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to save bakery item")
		return
	}

	h.invalidateMenu(ctx)
	h.respondJSON(w, status, h.snapshot())
}

func (h *ItemsHandler) snapshot() AdminSnapshot {
	return AdminSnapshot{
		Items: h.admin.Items(),
		Form:  h.admin.FormState(),
	}
}

func (h *ItemsHandler) invalidateMenu(ctx context.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.InvalidateMenu(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to invalidate cached menu",
			slog.String("error", err.Error()))
	}
}

func (h *ItemsHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, h.logger, status, data)
}

func (h *ItemsHandler) respondError(w http.ResponseWriter, status int, message string) {
	writeError(w, h.logger, status, message)
}
