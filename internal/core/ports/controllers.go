// internal/core/ports/controllers.go
package ports

import (
	"context"

	"github.com/ammerola/bakery-be/internal/core/domain"
)

// ItemsListener receives every newly published item list
type ItemsListener func(items []domain.BakeryItem)

// AdminController defines the business logic port for the admin screen.
// This interface is implemented by the services layer and used by handlers.
type AdminController interface {
	Submit(ctx context.Context, draft domain.Draft) error
	Remove(ctx context.Context, item domain.BakeryItem) error
	Edit(item domain.BakeryItem) domain.Draft
	NewEntry() domain.Draft
	FormState() domain.FormState
	Items() []domain.BakeryItem
	Subscribe(fn ItemsListener) (cancel func())
}

// BuyerController defines the read-only port for the buyer screen
type BuyerController interface {
	Refresh(ctx context.Context) error
	Items() []domain.BakeryItem
	Subscribe(fn ItemsListener) (cancel func())
}
