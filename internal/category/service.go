package category

import "github.com/gofiber/fiber/v2/log"

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Tree returns root categories with their subcategories nested.
func (s *Service) Tree() []Category {
	items, err := s.repo.List()
	if err != nil {
		log.Warnf("categories: %v", err)
		return []Category{}
	}
	return buildTree(items)
}

func buildTree(items []Item) []Category {
	children := make(map[int][]Item)
	known := make(map[int]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}
	roots := make([]Item, 0)
	for _, it := range items {
		// items pointing at a missing parent are promoted to roots
		if it.ParentID == nil || !known[*it.ParentID] || *it.ParentID == it.ID {
			roots = append(roots, it)
			continue
		}
		children[*it.ParentID] = append(children[*it.ParentID], it)
	}

	visited := make(map[int]bool, len(items))
	var build func(it Item) Category
	build = func(it Item) Category {
		visited[it.ID] = true
		c := Category{ID: it.ID, Title: it.Title, Image: it.Image, Subcategories: []Category{}}
		for _, child := range children[it.ID] {
			if visited[child.ID] {
				continue
			}
			c.Subcategories = append(c.Subcategories, build(child))
		}
		return c
	}

	out := make([]Category, 0, len(roots))
	for _, r := range roots {
		out = append(out, build(r))
	}
	return out
}
