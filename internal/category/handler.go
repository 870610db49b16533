package category

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/nav/menu", h.getMenu)
}

func (h *Handler) getMenu(c *fiber.Ctx) error {
	var selected *string
	if v := c.Query("category"); v != "" {
		selected = &v
	}
	menu, err := h.service.Menu(c.UserContext(), selected)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(menu)
}
