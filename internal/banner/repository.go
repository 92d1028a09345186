package banner

import (
	"sort"
	"sync"
)

// Repository provides access to promoted categories and the banners built
// from them.
type Repository interface {
	Promoted() ([]int, error)
	SetPromoted(ids []int) error
	ListByCategoryIDs(ids []int) ([]Banner, error)
}

// InMemoryRepository keeps banners keyed by category id.
type InMemoryRepository struct {
	mu       sync.RWMutex
	banners  map[int]Banner
	promoted []int
}

func NewInMemoryRepository(seed []Banner, promoted []int) *InMemoryRepository {
	r := &InMemoryRepository{
		banners:  make(map[int]Banner, len(seed)),
		promoted: append([]int(nil), promoted...),
	}
	for _, b := range seed {
		r.banners[b.ID] = b
	}
	return r
}

func (r *InMemoryRepository) Promoted() ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, len(r.promoted))
	copy(out, r.promoted)
	return out, nil
}

func (r *InMemoryRepository) SetPromoted(ids []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.promoted = append([]int(nil), ids...)
	return nil
}

func (r *InMemoryRepository) ListByCategoryIDs(ids []int) ([]Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Banner, 0, len(ids))
	for _, id := range ids {
		if b, ok := r.banners[id]; ok {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
