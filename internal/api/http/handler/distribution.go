package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/internal/service/distribution"
)

type DistributionHandler struct {
	svc distribution.Service
}

func NewDistributionHandler(svc distribution.Service) *DistributionHandler {
	return &DistributionHandler{svc: svc}
}

// GET /api/v1/distributions
func (h *DistributionHandler) List(c fiber.Ctx) error {
	dists, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, dists)
}

// GET /api/v1/distributions/:id
func (h *DistributionHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid distribution id")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDistributionError(c, err)
	}
	return ok(c, d)
}

// POST /api/v1/distributions
func (h *DistributionHandler) Create(c fiber.Ctx) error {
	var body struct {
		DistributionNumber  string `json:"distribution_number"`
		ReceiverFirstName   string `json:"receiver_first_name"`
		ReceiverLastName    string `json:"receiver_last_name"`
		ReceiverAge         int    `json:"receiver_age"`
		ReceiverSex         string `json:"receiver_sex"`
		Establishment       string `json:"establishment"`
		RequestedBloodGroup string `json:"requested_blood_group"`
		NumberOfBags        int    `json:"number_of_bags"`
		Service             string `json:"service"`
		CarrierName         string `json:"carrier_name"`
		DoctorName          string `json:"doctor_name"`
		IssuedAt            string `json:"issued_at"`
		BagID               string `json:"bagblood_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var errs []string
	if body.DistributionNumber == "" {
		errs = append(errs, "distribution_number is required")
	}
	if body.ReceiverFirstName == "" {
		errs = append(errs, "receiver_first_name is required")
	}
	if body.ReceiverLastName == "" {
		errs = append(errs, "receiver_last_name is required")
	}
	if body.Establishment == "" {
		errs = append(errs, "establishment is required")
	}
	bagID, err := uuid.Parse(body.BagID)
	if err != nil {
		errs = append(errs, "bagblood_id must be a valid id")
	}
	var issuedAt time.Time
	if body.IssuedAt != "" {
		issuedAt, err = time.Parse(dateLayout, body.IssuedAt)
		if err != nil {
			errs = append(errs, "issued_at must be a YYYY-MM-DD date")
		}
	}
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	d, err := h.svc.Create(c.Context(), distribution.CreateRequest{
		DistributionNumber:  body.DistributionNumber,
		ReceiverFirstName:   body.ReceiverFirstName,
		ReceiverLastName:    body.ReceiverLastName,
		ReceiverAge:         body.ReceiverAge,
		ReceiverSex:         body.ReceiverSex,
		Establishment:       body.Establishment,
		RequestedBloodGroup: body.RequestedBloodGroup,
		NumberOfBags:        body.NumberOfBags,
		Service:             body.Service,
		CarrierName:         body.CarrierName,
		DoctorName:          body.DoctorName,
		IssuedAt:            issuedAt,
		BagID:               bagID,
	})
	if err != nil {
		return mapDistributionError(c, err)
	}
	return created(c, d)
}

// PUT /api/v1/distributions/:id
func (h *DistributionHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid distribution id")
	}

	var body struct {
		DistributionNumber  *string `json:"distribution_number"`
		ReceiverFirstName   *string `json:"receiver_first_name"`
		ReceiverLastName    *string `json:"receiver_last_name"`
		ReceiverAge         *int    `json:"receiver_age"`
		ReceiverSex         *string `json:"receiver_sex"`
		Establishment       *string `json:"establishment"`
		RequestedBloodGroup *string `json:"requested_blood_group"`
		NumberOfBags        *int    `json:"number_of_bags"`
		Service             *string `json:"service"`
		CarrierName         *string `json:"carrier_name"`
		DoctorName          *string `json:"doctor_name"`
		IssuedAt            *string `json:"issued_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := distribution.UpdateRequest{
		DistributionNumber:  body.DistributionNumber,
		ReceiverFirstName:   body.ReceiverFirstName,
		ReceiverLastName:    body.ReceiverLastName,
		ReceiverAge:         body.ReceiverAge,
		ReceiverSex:         body.ReceiverSex,
		Establishment:       body.Establishment,
		RequestedBloodGroup: body.RequestedBloodGroup,
		NumberOfBags:        body.NumberOfBags,
		Service:             body.Service,
		CarrierName:         body.CarrierName,
		DoctorName:          body.DoctorName,
	}
	if body.IssuedAt != nil {
		issuedAt, err := time.Parse(dateLayout, *body.IssuedAt)
		if err != nil {
			return validationFailed(c, []string{"issued_at must be a YYYY-MM-DD date"})
		}
		req.IssuedAt = &issuedAt
	}

	d, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapDistributionError(c, err)
	}
	return ok(c, d)
}

// DELETE /api/v1/distributions/:id
func (h *DistributionHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid distribution id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapDistributionError(c, err)
	}
	return okMessage(c, "distribution deleted")
}

// GET /api/v1/distributions/stats/total
func (h *DistributionHandler) TotalCount(c fiber.Ctx) error {
	n, err := h.svc.TotalCount(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{"total": n})
}

func mapDistributionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, distribution.ErrDistributionNotFound),
		errors.Is(err, distribution.ErrBagNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, distribution.ErrBagAlreadyDistributed):
		return conflict(c, err.Error())
	case errors.Is(err, distribution.ErrMissingFields):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
