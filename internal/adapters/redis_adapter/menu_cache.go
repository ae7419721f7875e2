// internal/adapters/redis_adapter/menu_cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
)

const menuKey = "bakery:menu"

// MenuKey is the redis key holding the cached buyer menu
func MenuKey() string {
	return menuKey
}

// cachedMenu is the stored form of the menu
type cachedMenu struct {
	Items    []domain.BakeryItem `json:"items"`
	CachedAt time.Time           `json:"cached_at"`
}

// MenuCache stores the buyer menu in redis as JSON
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.MenuCache = (*MenuCache)(nil)

// NewMenuCache creates a menu cache whose entries expire after ttl.
// A zero ttl keeps the menu until it is invalidated.
func NewMenuCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *MenuCache {
	return &MenuCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "menu_cache")),
	}
}

// GetMenu returns the cached menu or ports.ErrMenuNotCached
func (c *MenuCache) GetMenu(ctx context.Context) ([]domain.BakeryItem, error) {
	data, err := c.client.Get(ctx, menuKey).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.DebugContext(ctx, "menu cache miss")
		return nil, ports.ErrMenuNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached menu: %w", err)
	}

	var menu cachedMenu
	if err := json.Unmarshal(data, &menu); err != nil {
		// an unreadable entry is dropped and treated as a miss
		c.logger.WarnContext(ctx, "discarding corrupt cached menu",
			slog.String("error", err.Error()))
		_ = c.client.Del(ctx, menuKey).Err()
		return nil, ports.ErrMenuNotCached
	}

	c.logger.DebugContext(ctx, "menu cache hit",
		slog.Int("items", len(menu.Items)),
		slog.Time("cached_at", menu.CachedAt))
	return menu.Items, nil
}

// SetMenu replaces the cached menu
func (c *MenuCache) SetMenu(ctx context.Context, items []domain.BakeryItem) error {
	if items == nil {
		items = []domain.BakeryItem{}
	}

	data, err := json.Marshal(cachedMenu{Items: items, CachedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}

	if err := c.client.Set(ctx, menuKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache menu: %w", err)
	}

	c.logger.DebugContext(ctx, "menu cached",
		slog.Int("items", len(items)),
		slog.Duration("ttl", c.ttl))
	return nil
}

// InvalidateMenu drops the cached menu; a missing entry is not an error
func (c *MenuCache) InvalidateMenu(ctx context.Context) error {
	if err := c.client.Del(ctx, menuKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached menu: %w", err)
	}

	c.logger.DebugContext(ctx, "menu invalidated")
	return nil
}
