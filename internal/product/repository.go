package product

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	// ListPopular returns up to limit products ordered by rating, then sales.
	ListPopular(limit int) ([]Product, error)
	// ListLimited returns up to limit products whose stock is nearly gone.
	ListLimited(limit int) ([]Product, error)
	// Catalog returns the page selected by a normalized filter and the number
	// of products matching it across all pages.
	Catalog(f CatalogFilter) ([]Product, int, error)
	// GetByID returns a product with its specifications and reviews.
	GetByID(id int) (Product, error)
	ListTags() ([]Tag, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) snapshot() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) ListPopular(limit int) ([]Product, error) {
	out := r.snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		if out[i].Sold != out[j].Sold {
			return out[i].Sold > out[j].Sold
		}
		return out[i].ID < out[j].ID
	})
	return truncate(out, limit), nil
}

func (r *InMemoryRepository) ListLimited(limit int) ([]Product, error) {
	out := make([]Product, 0)
	for _, p := range r.snapshot() {
		if isLimited(p.Count) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return truncate(out, limit), nil
}

func (r *InMemoryRepository) Catalog(f CatalogFilter) ([]Product, int, error) {
	matched := make([]Product, 0)
	for _, p := range r.snapshot() {
		if f.matches(p) {
			matched = append(matched, p)
		}
	}
	sortCatalog(matched, f.Sort, f.Desc)

	start := f.Offset()
	if start >= len(matched) {
		return []Product{}, len(matched), nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched), nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// ListTags returns every tag attached to a stored product, ordered by id.
func (r *InMemoryRepository) ListTags() ([]Tag, error) {
	seen := map[int]Tag{}
	for _, p := range r.snapshot() {
		for _, t := range p.Tags {
			seen[t.ID] = t
		}
	}
	out := make([]Tag, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func truncate(items []Product, limit int) []Product {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
