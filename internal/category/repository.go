package category

import "sync"

// Repository provides access to catalog categories.
type Repository interface {
	List() ([]Item, error)
}

// InMemoryRepository serves a fixed category list.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	return &InMemoryRepository{items: append([]Item(nil), seed...)}
}

func (r *InMemoryRepository) List() ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}
