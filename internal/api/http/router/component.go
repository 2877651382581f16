package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hemobank/hemobank_backend/internal/api/http/handler"
)

func (r *Router) registerComponentRoutes(api fiber.Router, h *handler.ComponentHandler, authRequired, biologistOnly fiber.Handler) {
	group := api.Group("/components", authRequired)

	group.Get("/", h.List)
	group.Get("/type/:type", h.ListByType)
	group.Get("/:id", h.Get)

	group.Post("/", biologistOnly, h.Create)
	group.Put("/:id", biologistOnly, h.Update)
	group.Delete("/:id", biologistOnly, h.Delete)
}
