package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products/popular", h.getPopular)
	app.Get("/api/products/limited", h.getLimited)
	app.Get("/api/catalog", h.getCatalog)
	app.Get("/api/tags", h.getTags)
	app.Get("/api/product/:id", h.getProduct)
}

func (h *Handler) getPopular(c *fiber.Ctx) error {
	return c.JSON(h.service.Popular())
}

func (h *Handler) getLimited(c *fiber.Ctx) error {
	return c.JSON(h.service.Limited())
}

func (h *Handler) getCatalog(c *fiber.Ctx) error {
	f, err := parseCatalogFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	page, err := h.service.Catalog(f)
	if errors.Is(err, ErrPageOutOfRange) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *Handler) getTags(c *fiber.Ctx) error {
	return c.JSON(h.service.Tags())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	d, err := h.service.Detail(id)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// parseCatalogFilter reads the query string used by the catalog page:
// filter[name|minPrice|maxPrice|freeDelivery|available], category, tags[],
// sort, sortType ("dec" for descending), currentPage and limit.
func parseCatalogFilter(c *fiber.Ctx) (CatalogFilter, error) {
	f := CatalogFilter{
		Name:         c.Query("filter[name]"),
		FreeDelivery: c.Query("filter[freeDelivery]") == "true",
		Available:    c.Query("filter[available]") == "true",
		Sort:         c.Query("sort"),
		Desc:         c.Query("sortType") == "dec",
	}

	var err error
	if f.MinPrice, err = optionalFloat(c, "filter[minPrice]"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalFloat(c, "filter[maxPrice]"); err != nil {
		return f, err
	}
	if f.Category, err = optionalInt(c, "category"); err != nil {
		return f, err
	}
	if f.Page, err = optionalInt(c, "currentPage"); err != nil {
		return f, err
	}
	if f.Limit, err = optionalInt(c, "limit"); err != nil {
		return f, err
	}

	for _, raw := range c.Context().QueryArgs().PeekMulti("tags[]") {
		id, err := strconv.Atoi(string(raw))
		if err != nil {
			return f, errors.New("invalid tags[]: " + string(raw))
		}
		f.Tags = append(f.Tags, id)
	}
	return f, nil
}

func optionalFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New("invalid " + key + ": " + raw)
	}
	return &v, nil
}

func optionalInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + key + ": " + raw)
	}
	return v, nil
}
