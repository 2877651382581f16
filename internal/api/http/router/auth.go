package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hemobank/hemobank_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler) {
	group := api.Group("/auth")
	group.Post("/login", h.Login)
	group.Post("/register-biologist", h.RegisterBiologist)
	group.Post("/register-chef-service", h.RegisterChef)
}
