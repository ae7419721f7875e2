// internal/core/ports/menu_cache.go
package ports

import (
	"context"
	"errors"

	"github.com/ammerola/bakery-be/internal/core/domain"
)

// ErrMenuNotCached is returned by GetMenu when no menu is cached
var ErrMenuNotCached = errors.New("menu not cached")

// MenuCache keeps the buyer menu between controller refreshes.
// Admin writes invalidate it so buyers never read past a mutation.
type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.BakeryItem, error)
	SetMenu(ctx context.Context, items []domain.BakeryItem) error
	InvalidateMenu(ctx context.Context) error
}
