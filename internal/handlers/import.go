// internal/handlers/import.go
package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
	"github.com/ammerola/bakery-be/internal/core/services"
)

// DefaultImportMaxSize bounds uploaded price list files
const DefaultImportMaxSize = 10 << 20

// ImportHandler loads price list spreadsheets through the admin controller
type ImportHandler struct {
	admin       ports.AdminController
	cache       ports.MenuCache
	maxFileSize int64
	logger      *slog.Logger
}

// NewImportHandler creates a new import handler. cache may be nil.
func NewImportHandler(admin ports.AdminController, cache ports.MenuCache, maxFileSize int64, logger *slog.Logger) *ImportHandler {
	if maxFileSize <= 0 {
		maxFileSize = DefaultImportMaxSize
	}
	return &ImportHandler{
		admin:       admin,
		cache:       cache,
		maxFileSize: maxFileSize,
		logger:      logger.With(slog.String("handler", "import")),
	}
}

// ImportFailure reports one rejected spreadsheet entry
type ImportFailure struct {
	Entry int    `json:"entry"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ImportResult summarizes a price list import
type ImportResult struct {
	Imported int             `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}

// ImportExcel handles POST /api/v1/admin/import
func (h *ImportHandler) ImportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != services.PriceListContentType &&
		!strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		h.respondError(w, http.StatusBadRequest, "Only Excel files are allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	drafts, err := services.ParsePriceList(data)
	if err != nil {
		h.logger.WarnContext(ctx, "rejected price list upload",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadRequest, "Invalid price list file")
		return
	}

	// every Submit resets the form; an edit in progress survives the import
	defer h.restoreForm(h.admin.FormState())

	result := ImportResult{Failed: []ImportFailure{}}
	for i, draft := range drafts {
		err := h.admin.Submit(ctx, draft)
		if err == nil {
			result.Imported++
			continue
		}

		msg, ok := validationMessage(err)
		if !ok {
			h.logger.ErrorContext(ctx, "price list import aborted",
				slog.Int("entry", i+1),
				slog.String("error", err.Error()))
			h.invalidateMenu(r, result.Imported)
			h.respondError(w, http.StatusInternalServerError, "Failed to save bakery item")
			return
		}
		result.Failed = append(result.Failed, ImportFailure{Entry: i + 1, Name: draft.Name, Error: msg})
	}

	h.invalidateMenu(r, result.Imported)

	h.logger.InfoContext(ctx, "price list imported",
		slog.String("filename", header.Filename),
		slog.Int("imported", result.Imported),
		slog.Int("failed", len(result.Failed)))

	h.respondJSON(w, http.StatusOK, result)
}

func (h *ImportHandler) restoreForm(form domain.FormState) {
	if form.Mode != domain.FormEditing {
		return
	}
	for _, item := range h.admin.Items() {
		if item.ID == form.ItemID {
			h.admin.Edit(item)
			return
		}
	}
}

func (h *ImportHandler) invalidateMenu(r *http.Request, imported int) {
	if h.cache == nil || imported == 0 {
		return
	}
	ctx := r.Context()
	if err := h.cache.InvalidateMenu(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to invalidate cached menu",
			slog.String("error", err.Error()))
	}
}

func (h *ImportHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, h.logger, status, data)
}

func (h *ImportHandler) respondError(w http.ResponseWriter, status int, message string) {
	writeError(w, h.logger, status, message)
}
