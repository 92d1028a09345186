package banner

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/banners", h.getBanners)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/banners/promoted", h.getPromoted)
	app.Put("/api/banners/promoted", h.putPromoted)
}

func (h *Handler) getBanners(c *fiber.Ctx) error {
	// an empty promoted list is fine, the frontend just renders no slides
	return c.JSON(h.service.List())
}

func (h *Handler) getPromoted(c *fiber.Ctx) error {
	ids, err := h.service.Promoted()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(PromotedPayload{IDs: ids})
}

func (h *Handler) putPromoted(c *fiber.Ctx) error {
	var body PromotedPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ids, err := h.service.SetPromoted(body.IDs)
	if err != nil {
		if errors.Is(err, ErrInvalidPromoted) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(PromotedPayload{IDs: ids})
}
