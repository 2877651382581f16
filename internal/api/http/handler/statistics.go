package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/hemobank/hemobank_backend/internal/service/statistics"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

type StatisticsHandler struct {
	svc statistics.Service
}

func NewStatisticsHandler(svc statistics.Service) *StatisticsHandler {
	return &StatisticsHandler{svc: svc}
}

// GET /api/v1/statistics/dashboard
func (h *StatisticsHandler) Dashboard(c fiber.Ctx) error {
	stats, err := h.svc.Dashboard(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

// GET /api/v1/statistics/detailed
func (h *StatisticsHandler) Detailed(c fiber.Ctx) error {
	stats, err := h.svc.Detailed(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

// GET /api/v1/statistics/yearly/:year
func (h *StatisticsHandler) Yearly(c fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return badRequest(c, "year must be a number")
	}

	stats, err := h.svc.Yearly(c.Context(), year)
	if err != nil {
		return mapStatisticsError(c, err)
	}
	return ok(c, stats)
}

// POST /api/v1/statistics/yearly
func (h *StatisticsHandler) SaveYearly(c fiber.Ctx) error {
	var body struct {
		Year int `json:"year"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	stats, err := h.svc.SaveYearly(c.Context(), body.Year)
	if err != nil {
		return mapStatisticsError(c, err)
	}
	return created(c, stats)
}

func mapStatisticsError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reqctx.ErrNoPrincipal):
		return unauthorized(c)
	case errors.Is(err, statistics.ErrInvalidYear):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
