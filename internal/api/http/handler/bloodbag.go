package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/internal/service/bloodbag"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

const dateLayout = "2006-01-02"

type BloodBagHandler struct {
	svc bloodbag.Service
}

func NewBloodBagHandler(svc bloodbag.Service) *BloodBagHandler {
	return &BloodBagHandler{svc: svc}
}

// GET /api/v1/blood-bags
func (h *BloodBagHandler) List(c fiber.Ctx) error {
	bags, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, bags)
}

// GET /api/v1/blood-bags/:id
func (h *BloodBagHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid blood bag id")
	}

	bag, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapBagError(c, err)
	}
	return ok(c, bag)
}

// POST /api/v1/blood-bags
func (h *BloodBagHandler) Create(c fiber.Ctx) error {
	var body struct {
		BagNumber      string  `json:"bag_number"`
		BloodGroup     string  `json:"blood_group"`
		DonationID     string  `json:"donation_id"`
		BagType        string  `json:"bag_type"`
		Weight         float64 `json:"weight"`
		CollectionDate string  `json:"collection_date"`
		HbsAg          string  `json:"hbs_ag"`
		Hcv            string  `json:"hcv"`
		Hiv            string  `json:"hiv"`
		Tpha           string  `json:"tpha"`
		AntiHtlv       string  `json:"anti_htlv"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var errs []string
	if body.BagNumber == "" {
		errs = append(errs, "bag_number is required")
	}
	if body.BloodGroup == "" {
		errs = append(errs, "blood_group is required")
	}
	collection, err := time.Parse(dateLayout, body.CollectionDate)
	if err != nil {
		errs = append(errs, "collection_date must be a YYYY-MM-DD date")
	}
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	bag, err := h.svc.Create(c.Context(), bloodbag.CreateRequest{
		BagNumber:      body.BagNumber,
		BloodGroup:     body.BloodGroup,
		DonationID:     body.DonationID,
		BagType:        body.BagType,
		Weight:         body.Weight,
		CollectionDate: collection,
		HbsAg:          body.HbsAg,
		Hcv:            body.Hcv,
		Hiv:            body.Hiv,
		Tpha:           body.Tpha,
		AntiHtlv:       body.AntiHtlv,
	})
	if err != nil {
		return mapBagError(c, err)
	}
	return created(c, bag)
}

// PUT /api/v1/blood-bags/:id
func (h *BloodBagHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid blood bag id")
	}

	var body struct {
		BagNumber      *string  `json:"bag_number"`
		BloodGroup     *string  `json:"blood_group"`
		DonationID     *string  `json:"donation_id"`
		BagType        *string  `json:"bag_type"`
		Weight         *float64 `json:"weight"`
		CollectionDate *string  `json:"collection_date"`
		HbsAg          *string  `json:"hbs_ag"`
		Hcv            *string  `json:"hcv"`
		Hiv            *string  `json:"hiv"`
		Tpha           *string  `json:"tpha"`
		AntiHtlv       *string  `json:"anti_htlv"`
		IsDistributed  *bool    `json:"is_distributed"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := bloodbag.UpdateRequest{
		BagNumber:     body.BagNumber,
		BloodGroup:    body.BloodGroup,
		DonationID:    body.DonationID,
		BagType:       body.BagType,
		Weight:        body.Weight,
		HbsAg:         body.HbsAg,
		Hcv:           body.Hcv,
		Hiv:           body.Hiv,
		Tpha:          body.Tpha,
		AntiHtlv:      body.AntiHtlv,
		IsDistributed: body.IsDistributed,
	}
	if body.CollectionDate != nil {
		collection, err := time.Parse(dateLayout, *body.CollectionDate)
		if err != nil {
			return validationFailed(c, []string{"collection_date must be a YYYY-MM-DD date"})
		}
		req.CollectionDate = &collection
	}

	bag, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapBagError(c, err)
	}
	return ok(c, bag)
}

// DELETE /api/v1/blood-bags/:id
func (h *BloodBagHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid blood bag id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapBagError(c, err)
	}
	return okMessage(c, "blood bag deleted")
}

// GET /api/v1/blood-bags/alerts/expiring
func (h *BloodBagHandler) ExpiringAlerts(c fiber.Ctx) error {
	bags, err := h.svc.ExpiringAlerts(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, bags)
}

func mapBagError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reqctx.ErrNoPrincipal):
		return unauthorized(c)
	case errors.Is(err, bloodbag.ErrBagNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, bloodbag.ErrBagNumberExists),
		errors.Is(err, bloodbag.ErrBagHasComponents),
		errors.Is(err, bloodbag.ErrBagHasDistributions):
		return conflict(c, err.Error())
	case errors.Is(err, bloodbag.ErrMissingFields):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
