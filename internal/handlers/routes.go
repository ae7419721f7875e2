// internal/handlers/routes.go
package handlers

import "net/http"

// APIPrefix is the versioned root of all JSON routes
const APIPrefix = "/api/v1"

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Items  *ItemsHandler
	Menu   *MenuHandler
	Export *ExportHandler
	Import *ImportHandler
	Health *HealthHandler
}

// RegisterRoutes wires every handler onto mux using method-specific patterns
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	if h.Health != nil {
		mux.HandleFunc("GET /health", h.Health.Health)
		mux.HandleFunc("GET /ready", h.Health.Readiness)
		mux.HandleFunc("GET "+APIPrefix+"/health", h.Health.Health)
	}

	// Buyer
	mux.HandleFunc("GET "+APIPrefix+"/menu", h.Menu.GetMenu)

	// Admin
	mux.HandleFunc("GET "+APIPrefix+"/admin/items", h.Items.ListItems)
	mux.HandleFunc("GET "+APIPrefix+"/admin/items/{id}", h.Items.GetItem)
	mux.HandleFunc("POST "+APIPrefix+"/admin/items", h.Items.CreateItem)
	mux.HandleFunc("PUT "+APIPrefix+"/admin/items/{id}", h.Items.UpdateItem)
	mux.HandleFunc("DELETE "+APIPrefix+"/admin/items/{id}", h.Items.DeleteItem)
	mux.HandleFunc("POST "+APIPrefix+"/admin/items/{id}/edit", h.Items.EditItem)
	mux.HandleFunc("GET "+APIPrefix+"/admin/form", h.Items.GetForm)
	mux.HandleFunc("POST "+APIPrefix+"/admin/form/reset", h.Items.ResetForm)

	// Price list
	mux.HandleFunc("GET "+APIPrefix+"/admin/export/xlsx", h.Export.ExportExcel)
	mux.HandleFunc("POST "+APIPrefix+"/admin/export", h.Export.QueueExport)
	mux.HandleFunc("POST "+APIPrefix+"/admin/import", h.Import.ImportExcel)
}
