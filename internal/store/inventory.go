// Package store owns the authoritative in-memory item collection and all id
// allocation. It is the only component allowed to mutate items.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/technova/inventory-service/internal/domain/models"
)

// ErrNotFound is returned when no item with the requested id exists.
var ErrNotFound = errors.New("item not found")

// InventoryStore holds items in insertion order behind a single lock. One
// instance is created at startup and injected into the HTTP layer; tests
// create their own. All methods are safe for concurrent use.
type InventoryStore struct {
	mu       sync.RWMutex
	items    []models.Item
	maxID    int
	onResize func(count int)
}

// NewInventoryStore returns an empty store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{}
}

// OnSizeChange registers a callback invoked with the item count after every
// successful Add or Delete. The callback runs under the store lock and must
// not call back into the store. Register before sharing the store between
// goroutines.
func (s *InventoryStore) OnSizeChange(fn func(count int)) {
	s.onResize = fn
}

// List returns a snapshot of all items in insertion order.
func (s *InventoryStore) List() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given id, or ErrNotFound.
func (s *InventoryStore) Get(id int) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Item{}, ErrNotFound
}

// Len returns the current number of items.
func (s *InventoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Add stores a new item and returns it. The caller must have validated the
// input already. The id is one greater than the highest id ever allocated by
// this store, so concurrent adds always receive distinct ids and deleted ids
// never come back.
func (s *InventoryStore) Add(name string, stock int) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maxID++
	item := models.Item{
		ID:        s.maxID,
		Name:      strings.TrimSpace(name),
		Stock:     stock,
		CreatedAt: time.Now().UTC(),
	}
	s.items = append(s.items, item)
	s.notifyLocked()
	return item
}

// Update replaces name and stock of an existing item and stamps updated_at.
// The id and created_at are left untouched. All three written fields commit
// together; a concurrent reader sees either the old or the new item, never a
// mix. Returns ErrNotFound when the id does not exist.
func (s *InventoryStore) Update(id int, name string, stock int) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			now := time.Now().UTC()
			s.items[i].Name = strings.TrimSpace(name)
			s.items[i].Stock = stock
			s.items[i].UpdatedAt = &now
			return s.items[i], nil
		}
	}
	return models.Item{}, ErrNotFound
}

// Delete removes an item permanently and returns its final snapshot. The id
// is retired for the lifetime of the store. Returns ErrNotFound when the id
// does not exist.
func (s *InventoryStore) Delete(id int) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notifyLocked()
			return item, nil
		}
	}
	return models.Item{}, ErrNotFound
}

func (s *InventoryStore) notifyLocked() {
	if s.onResize != nil {
		s.onResize(len(s.items))
	}
}
