package landing

import "github.com/gofiber/fiber/v2"

// Handler serves the landing page data. Each request binds a fresh Page, the
// way each render mounts a fresh component.
type Handler struct {
	fetcher Fetcher
	logger  Logger
}

func NewHandler(f Fetcher) *Handler {
	return &Handler{fetcher: f}
}

// WithLogger sets the logger handed to every page.
func (h *Handler) WithLogger(l Logger) *Handler {
	h.logger = l
	return h
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/home", h.getHome)
}

func (h *Handler) getHome(c *fiber.Ctx) error {
	page := NewPage(h.fetcher)
	if h.logger != nil {
		page.WithLogger(h.logger)
	}
	page.Load(c.UserContext())
	return c.JSON(page.State())
}
