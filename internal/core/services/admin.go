// internal/core/services/admin.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
)

// AdminController drives the admin screen: it validates drafts, writes
// them to the item store and republishes the full list after every change.
// Concurrent edits to the same id are last-write-wins.
type AdminController struct {
	store  ports.ItemStore
	logger *slog.Logger
	feed   *itemFeed

	// mu serialises each mutate-then-refresh sequence
	mu sync.Mutex

	formMu sync.RWMutex
	form   domain.FormState
}

// Statically assert that *AdminController implements the AdminController port.
var _ ports.AdminController = (*AdminController)(nil)

// NewAdminController creates an admin controller and loads the initial list
func NewAdminController(ctx context.Context, store ports.ItemStore, logger *slog.Logger) (*AdminController, error) {
	c := &AdminController{
		store:  store,
		logger: logger.With(slog.String("service", "admin")),
		feed:   newItemFeed(),
		form:   domain.Creating(),
	}

	if err := c.feed.refresh(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to load admin items: %w", err)
	}

	return c, nil
}

// Submit validates the draft and inserts or replaces the record it describes.
// A validation failure never reaches the store and leaves the form as it was.
func (c *AdminController) Submit(ctx context.Context, draft domain.Draft) error {
	mutation, err := draft.Mutation()
	if err != nil {
		c.logger.DebugContext(ctx, "draft rejected", slog.String("reason", err.Error()))
		return err
	}

	c.mu.Lock()
	err = c.apply(ctx, mutation)
	c.mu.Unlock()

	c.feed.flush()
	return err
}

func (c *AdminController) apply(ctx context.Context, mutation domain.Mutation) error {
	item := mutation.Item()
	if err := c.store.Upsert(ctx, &item); err != nil {
		return fmt.Errorf("failed to submit bakery item: %w", err)
	}

	switch mutation.(type) {
	case domain.Insert:
		c.logger.InfoContext(ctx, "bakery item created", slog.Int64("id", item.ID))
	case domain.Update:
		c.logger.InfoContext(ctx, "bakery item updated", slog.Int64("id", item.ID))
	}

	if err := c.feed.refresh(ctx, c.store); err != nil {
		return err
	}

	c.setForm(domain.Creating())
	return nil
}

// Remove deletes the item's record and republishes the list
func (c *AdminController) Remove(ctx context.Context, item domain.BakeryItem) error {
	c.mu.Lock()
	err := c.remove(ctx, item.ID)
	c.mu.Unlock()

	c.feed.flush()
	return err
}

func (c *AdminController) remove(ctx context.Context, id int64) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove bakery item %d: %w", id, err)
	}

	c.logger.InfoContext(ctx, "bakery item removed", slog.Int64("id", id))

	if err := c.feed.refresh(ctx, c.store); err != nil {
		return err
	}

	c.formMu.Lock()
	if c.form.IsEditing(id) {
		c.form = domain.Creating()
	}
	c.formMu.Unlock()

	return nil
}

// Edit switches the form to editing item and returns the loaded draft
func (c *AdminController) Edit(item domain.BakeryItem) domain.Draft {
	c.setForm(domain.Editing(item.ID))
	return domain.DraftFromItem(item)
}

// NewEntry switches the form back to creating and returns an empty draft
func (c *AdminController) NewEntry() domain.Draft {
	c.setForm(domain.Creating())
	return domain.Draft{}
}

// FormState returns the current form mode
func (c *AdminController) FormState() domain.FormState {
	c.formMu.RLock()
	defer c.formMu.RUnlock()
	return c.form
}

// Items returns the latest published list
func (c *AdminController) Items() []domain.BakeryItem {
	return c.feed.Items()
}

// Subscribe registers fn for every republished list. fn runs after the
// write that caused it has completed.
func (c *AdminController) Subscribe(fn ports.ItemsListener) func() {
	return c.feed.Subscribe(fn)
}

func (c *AdminController) setForm(state domain.FormState) {
	c.formMu.Lock()
	c.form = state
	c.formMu.Unlock()
}
