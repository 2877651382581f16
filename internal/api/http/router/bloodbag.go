package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hemobank/hemobank_backend/internal/api/http/handler"
)

func (r *Router) registerBloodBagRoutes(api fiber.Router, h *handler.BloodBagHandler, authRequired, biologistOnly fiber.Handler) {
	group := api.Group("/blood-bags", authRequired)

	group.Get("/", h.List)
	group.Get("/alerts/expiring", h.ExpiringAlerts)
	group.Get("/:id", h.Get)

	group.Post("/", biologistOnly, h.Create)
	group.Put("/:id", biologistOnly, h.Update)
	group.Delete("/:id", biologistOnly, h.Delete)
}
