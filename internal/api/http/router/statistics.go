package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hemobank/hemobank_backend/internal/api/http/handler"
)

func (r *Router) registerStatisticsRoutes(api fiber.Router, h *handler.StatisticsHandler, authRequired fiber.Handler) {
	group := api.Group("/statistics", authRequired)

	group.Get("/dashboard", h.Dashboard)
	group.Get("/detailed", h.Detailed)
	group.Get("/yearly/:year", h.Yearly)
	group.Post("/yearly", h.SaveYearly)
}
