package banner

import (
	"errors"
	"math/rand"

	"github.com/gofiber/fiber/v2/log"
)

// ShownBanners is how many promoted categories are advertised per request.
const ShownBanners = 3

// ErrInvalidPromoted is returned when a promoted list is empty or holds
// non-positive ids.
var ErrInvalidPromoted = errors.New("promoted ids must be a non-empty list of positive ids")

// Service provides business logic for banners.
type Service struct {
	repo Repository
	perm func(n int) []int
}

func NewService(r Repository) *Service {
	return &Service{repo: r, perm: rand.Perm}
}

// List returns up to ShownBanners banners picked at random from the promoted
// categories. Failures are logged and produce an empty list.
func (s *Service) List() []Banner {
	promoted, err := s.repo.Promoted()
	if err != nil {
		log.Warnf("banners: %v", err)
		return []Banner{}
	}

	items, err := s.repo.ListByCategoryIDs(s.pick(promoted))
	if err != nil {
		log.Warnf("banners: %v", err)
		return []Banner{}
	}
	return items
}

func (s *Service) pick(ids []int) []int {
	if len(ids) <= ShownBanners {
		return ids
	}
	out := make([]int, 0, ShownBanners)
	for _, i := range s.perm(len(ids))[:ShownBanners] {
		out = append(out, ids[i])
	}
	return out
}

// Promoted returns the configured promoted category ids.
func (s *Service) Promoted() ([]int, error) {
	return s.repo.Promoted()
}

// SetPromoted replaces the promoted category ids. Duplicates are dropped.
func (s *Service) SetPromoted(ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidPromoted
	}
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, ErrInvalidPromoted
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if err := s.repo.SetPromoted(out); err != nil {
		return nil, err
	}
	return out, nil
}
