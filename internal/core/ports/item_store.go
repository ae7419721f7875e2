// internal/core/ports/item_store.go
package ports

import (
	"context"

	"github.com/ammerola/bakery-be/internal/core/domain"
)

// ItemStore defines the persistence port for bakery items.
// This interface is implemented by the database adapter.
type ItemStore interface {
	// Upsert inserts the item when item.ID is zero and writes the new id
	// back into item; otherwise it replaces the record with that id.
	Upsert(ctx context.Context, item *domain.BakeryItem) error
	// Delete removes the record with id. A missing id is not an error.
	Delete(ctx context.Context, id int64) error
	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]domain.BakeryItem, error)
	Get(ctx context.Context, id int64) (*domain.BakeryItem, error)
	Count(ctx context.Context) (int64, error)
}
