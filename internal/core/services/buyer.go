// internal/core/services/buyer.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
)

// BuyerController is the read-only view of the bakery items
type BuyerController struct {
	store  ports.ItemStore
	logger *slog.Logger
	feed   *itemFeed
	mu     sync.Mutex
}

var _ ports.BuyerController = (*BuyerController)(nil)

// NewBuyerController creates a buyer controller and loads the list once
func NewBuyerController(ctx context.Context, store ports.ItemStore, logger *slog.Logger) (*BuyerController, error) {
	c := &BuyerController{
		store:  store,
		logger: logger.With(slog.String("service", "buyer")),
		feed:   newItemFeed(),
	}

	if err := c.feed.refresh(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	return c, nil
}

// Refresh reloads the list from the store
func (c *BuyerController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	err := c.feed.refresh(ctx, c.store)
	c.mu.Unlock()

	c.feed.flush()
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "menu refreshed")
	return nil
}

// Items returns the latest published list
func (c *BuyerController) Items() []domain.BakeryItem {
	return c.feed.Items()
}

// Subscribe registers fn for every refreshed list
func (c *BuyerController) Subscribe(fn ports.ItemsListener) func() {
	return c.feed.Subscribe(fn)
}
