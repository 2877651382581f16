package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hemobank/hemobank_backend/internal/api/http/handler"
)

func (r *Router) registerDistributionRoutes(api fiber.Router, h *handler.DistributionHandler, authRequired, biologistOnly fiber.Handler) {
	group := api.Group("/distributions", authRequired)

	group.Get("/", h.List)
	group.Get("/stats/total", h.TotalCount)
	group.Get("/:id", h.Get)

	group.Post("/", biologistOnly, h.Create)
	group.Put("/:id", biologistOnly, h.Update)
	group.Delete("/:id", biologistOnly, h.Delete)
}
