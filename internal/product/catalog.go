package product

import (
	"cmp"
	"sort"
	"strings"
)

// Catalog paging and sorting bounds.
const (
	DefaultPageSize = 4
	MaxPageSize     = 20
)

// Sort keys accepted by the catalog.
const (
	SortPrice   = "price"
	SortReviews = "reviews"
	SortRating  = "rating"
	SortDate    = "date"
)

// CatalogFilter narrows, orders and pages the catalog. Zero values mean "no
// constraint".
type CatalogFilter struct {
	Name         string
	MinPrice     *float64
	MaxPrice     *float64
	FreeDelivery bool
	Available    bool
	Category     int
	Tags         []int
	Sort         string
	Desc         bool
	Page         int
	Limit        int
}

// Normalize clamps paging and replaces an unknown sort key with price.
func (f CatalogFilter) Normalize() CatalogFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	switch f.Sort {
	case SortPrice, SortReviews, SortRating, SortDate:
	default:
		f.Sort = SortPrice
	}
	return f
}

// Offset is the number of products skipped before the current page.
func (f CatalogFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// CatalogPage is the paged response of GET /api/catalog.
type CatalogPage struct {
	Items       []Card `json:"items"`
	CurrentPage int    `json:"currentPage"`
	LastPage    int    `json:"lastPage"`
}

// lastPage follows the paginator rule that an empty result still has page 1.
func lastPage(total, limit int) int {
	if total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// matches reports whether p passes every constraint of f.
func (f CatalogFilter) matches(p Product) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Name)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.FreeDelivery && !p.FreeDelivery {
		return false
	}
	if f.Available && p.Count <= 0 {
		return false
	}
	if f.Category > 0 && p.CategoryID != f.Category {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(p, f.Tags) {
		return false
	}
	return true
}

func hasAnyTag(p Product, ids []int) bool {
	for _, t := range p.Tags {
		for _, id := range ids {
			if t.ID == id {
				return true
			}
		}
	}
	return false
}

func sortCatalog(items []Product, key string, desc bool) {
	compare := func(a, b Product) int {
		switch key {
		case SortReviews:
			return cmp.Compare(a.Reviews, b.Reviews)
		case SortRating:
			return cmp.Compare(a.Rating, b.Rating)
		case SortDate:
			return a.Date.Compare(b.Date)
		default:
			return cmp.Compare(a.Price, b.Price)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		c := compare(items[i], items[j])
		if c == 0 {
			return items[i].ID < items[j].ID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}
