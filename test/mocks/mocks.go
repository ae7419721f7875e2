// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/item_store.go -destination=item_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/controllers.go -destination=controllers_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/menu_cache.go -destination=menu_cache_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/export.go -destination=export_mock.go -package=mocks
