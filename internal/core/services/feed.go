// internal/core/services/feed.go
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
)

type subscription struct {
	id uint64
	fn ports.ItemsListener
}

// itemFeed holds the latest published item list and its listeners
type itemFeed struct {
	mu        sync.RWMutex
	items     []domain.BakeryItem
	listeners []subscription
	nextID    uint64

	// pending snapshots wait here until flush hands them to listeners
	pending  [][]domain.BakeryItem
	flushing bool
}

func newItemFeed() *itemFeed {
	return &itemFeed{items: []domain.BakeryItem{}}
}

// Items returns a copy of the current snapshot
func (f *itemFeed) Items() []domain.BakeryItem {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return cloneItems(f.items)
}

// Subscribe registers fn for every future publish. Listeners are called
// by flush, outside any controller lock, so a listener may itself submit
// or remove items.
func (f *itemFeed) Subscribe(fn ports.ItemsListener) func() {
	if fn == nil {
		return func() {}
	}

	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.listeners = append(f.listeners, subscription{id: id, fn: fn})
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			for i, s := range f.listeners {
				if s.id == id {
					f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// publish swaps the snapshot and queues it for the listeners
func (f *itemFeed) publish(items []domain.BakeryItem) {
	if items == nil {
		items = []domain.BakeryItem{}
	}

	f.mu.Lock()
	f.items = items
	if len(f.listeners) > 0 {
		f.pending = append(f.pending, items)
	}
	f.mu.Unlock()
}

// flush delivers queued snapshots in publish order. One goroutine
// delivers at a time; snapshots published by a listener are picked up
// by the same loop once the listener returns.
func (f *itemFeed) flush() {
	f.mu.Lock()
	if f.flushing {
		f.mu.Unlock()
		return
	}
	f.flushing = true

	for len(f.pending) > 0 {
		items := f.pending[0]
		f.pending = f.pending[1:]
		listeners := make([]subscription, len(f.listeners))
		copy(listeners, f.listeners)
		f.mu.Unlock()

		f.deliver(listeners, items)

		f.mu.Lock()
	}

	f.flushing = false
	f.pending = nil
	f.mu.Unlock()
}

func (f *itemFeed) deliver(listeners []subscription, items []domain.BakeryItem) {
	defer func() {
		// a panicking listener must not wedge later flushes
		if r := recover(); r != nil {
			f.mu.Lock()
			f.flushing = false
			f.mu.Unlock()
			panic(r)
		}
	}()

	for _, s := range listeners {
		s.fn(cloneItems(items))
	}
}

// refresh replaces the snapshot with the store's full list. Callers
// flush once they have released their own locks.
func (f *itemFeed) refresh(ctx context.Context, store ports.ItemStore) error {
	items, err := store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh bakery items: %w", err)
	}

	f.publish(items)
	return nil
}

func cloneItems(items []domain.BakeryItem) []domain.BakeryItem {
	out := make([]domain.BakeryItem, len(items))
	copy(out, items)
	return out
}
