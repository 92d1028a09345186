package product

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

// LandingLimit caps the popular and limited lists shown on the landing page.
const LandingLimit = 8

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Popular returns the best rated products as cards. Repository failures are
// logged and produce an empty list.
func (s *Service) Popular() []Card {
	items, err := s.repo.ListPopular(LandingLimit)
	if err != nil {
		log.Warnf("popular products: %v", err)
		return []Card{}
	}
	return toCards(items)
}

// Limited returns products with 1 to 3 items left in stock.
func (s *Service) Limited() []Card {
	items, err := s.repo.ListLimited(LandingLimit)
	if err != nil {
		log.Warnf("limited products: %v", err)
		return []Card{}
	}
	return toCards(items)
}

// ErrPageOutOfRange is returned when the requested catalog page is past the
// last one.
var ErrPageOutOfRange = errors.New("page out of range")

// Catalog returns one page of filtered products. An empty result still has a
// single page, so page 1 is always valid.
func (s *Service) Catalog(f CatalogFilter) (CatalogPage, error) {
	f = f.Normalize()
	items, total, err := s.repo.Catalog(f)
	if err != nil {
		log.Warnf("catalog: %v", err)
		return CatalogPage{Items: []Card{}, CurrentPage: 1, LastPage: 1}, nil
	}

	last := lastPage(total, f.Limit)
	if f.Page > last {
		return CatalogPage{}, fmt.Errorf("page %d of %d: %w", f.Page, last, ErrPageOutOfRange)
	}
	return CatalogPage{Items: toCards(items), CurrentPage: f.Page, LastPage: last}, nil
}

func (s *Service) Tags() []Tag {
	tags, err := s.repo.ListTags()
	if err != nil {
		log.Warnf("tags: %v", err)
		return []Tag{}
	}
	if tags == nil {
		return []Tag{}
	}
	return tags
}

// Detail returns ErrNotFound for unknown ids.
func (s *Service) Detail(id int) (Detail, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Detail{}, err
	}
	return NewDetail(p), nil
}

func toCards(items []Product) []Card {
	out := make([]Card, 0, len(items))
	for _, p := range items {
		out = append(out, NewCard(p))
	}
	return out
}
