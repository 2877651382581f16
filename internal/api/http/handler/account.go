package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/internal/service/account"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// GET /api/v1/users/biologists
func (h *AccountHandler) ListBiologists(c fiber.Ctx) error {
	bios, err := h.svc.ListBiologists(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, bios)
}

// GET /api/v1/users/biologists/:id
func (h *AccountHandler) GetBiologist(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid biologist id")
	}

	b, err := h.svc.GetBiologist(c.Context(), id)
	if err != nil {
		return mapAccountError(c, err)
	}
	return ok(c, b)
}

// PUT /api/v1/users/biologists/:id
func (h *AccountHandler) UpdateBiologist(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid biologist id")
	}

	var body struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Username    *string `json:"username"`
		Email       *string `json:"email"`
		PhoneNumber *string `json:"phone_number"`
		Password    *string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	b, err := h.svc.UpdateBiologist(c.Context(), id, account.UpdateBiologistRequest{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Username:    body.Username,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Password:    body.Password,
	})
	if err != nil {
		return mapAccountError(c, err)
	}
	return ok(c, b)
}

// DELETE /api/v1/users/biologists/:id
func (h *AccountHandler) DeleteBiologist(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid biologist id")
	}

	if err := h.svc.DeleteBiologist(c.Context(), id); err != nil {
		return mapAccountError(c, err)
	}
	return okMessage(c, "biologist deleted")
}

// GET /api/v1/users/profile
func (h *AccountHandler) ChefProfile(c fiber.Ctx) error {
	p, err := h.svc.ChefProfile(c.Context())
	if err != nil {
		return mapAccountError(c, err)
	}
	return ok(c, p)
}

// PUT /api/v1/users/profile
func (h *AccountHandler) UpdateChefProfile(c fiber.Ctx) error {
	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Password  *string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.UpdateChefProfile(c.Context(), account.UpdateChefRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
	})
	if err != nil {
		return mapAccountError(c, err)
	}
	return ok(c, p)
}

func mapAccountError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reqctx.ErrNoPrincipal):
		return unauthorized(c)
	case errors.Is(err, account.ErrBiologistNotFound),
		errors.Is(err, account.ErrChefNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, account.ErrUsernameExists),
		errors.Is(err, account.ErrEmailExists),
		errors.Is(err, account.ErrBiologistOwnsBags):
		return conflict(c, err.Error())
	case errors.Is(err, account.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
