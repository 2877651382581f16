package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/internal/service/component"
)

type ComponentHandler struct {
	svc component.Service
}

func NewComponentHandler(svc component.Service) *ComponentHandler {
	return &ComponentHandler{svc: svc}
}

// GET /api/v1/components
func (h *ComponentHandler) List(c fiber.Ctx) error {
	comps, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, comps)
}

// GET /api/v1/components/:id
func (h *ComponentHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid component id")
	}

	comp, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapComponentError(c, err)
	}
	return ok(c, comp)
}

// GET /api/v1/components/type/:type
func (h *ComponentHandler) ListByType(c fiber.Ctx) error {
	comps, err := h.svc.ListByType(c.Context(), c.Params("type"))
	if err != nil {
		return mapComponentError(c, err)
	}
	return ok(c, comps)
}

// POST /api/v1/components
func (h *ComponentHandler) Create(c fiber.Ctx) error {
	var body struct {
		Type   string  `json:"type"`
		Weight float64 `json:"weight"`
		BagID  string  `json:"bagblood_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var errs []string
	if body.Type == "" {
		errs = append(errs, "type is required")
	}
	bagID, err := uuid.Parse(body.BagID)
	if err != nil {
		errs = append(errs, "bagblood_id must be a valid id")
	}
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	comp, err := h.svc.Create(c.Context(), component.CreateRequest{
		Type:   body.Type,
		Weight: body.Weight,
		BagID:  bagID,
	})
	if err != nil {
		return mapComponentError(c, err)
	}
	return created(c, comp)
}

// PUT /api/v1/components/:id
func (h *ComponentHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid component id")
	}

	var body struct {
		Weight        *float64 `json:"weight"`
		IsDistributed *bool    `json:"is_distributed"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	comp, err := h.svc.Update(c.Context(), id, component.UpdateRequest{
		Weight:        body.Weight,
		IsDistributed: body.IsDistributed,
	})
	if err != nil {
		return mapComponentError(c, err)
	}
	return ok(c, comp)
}

// DELETE /api/v1/components/:id
func (h *ComponentHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid component id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapComponentError(c, err)
	}
	return okMessage(c, "component deleted")
}

func mapComponentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, component.ErrComponentNotFound),
		errors.Is(err, component.ErrParentBagNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, component.ErrComponentDistributed):
		return conflict(c, err.Error())
	case errors.Is(err, component.ErrInvalidComponentType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
