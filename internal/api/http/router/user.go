package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hemobank/hemobank_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.AccountHandler, authRequired, chefOnly fiber.Handler) {
	group := api.Group("/users", authRequired, chefOnly)

	group.Get("/biologists", h.ListBiologists)
	group.Get("/biologists/:id", h.GetBiologist)
	group.Put("/biologists/:id", h.UpdateBiologist)
	group.Delete("/biologists/:id", h.DeleteBiologist)

	group.Get("/profile", h.ChefProfile)
	group.Put("/profile", h.UpdateChefProfile)
}
