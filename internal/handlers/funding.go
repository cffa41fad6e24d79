package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/utils"
)

// FundingHandler handles funding request routes
type FundingHandler struct {
	Store *store.Store
}

// List handles GET /api/funding
// @Summary List funding requests
// @Description Agencies see requests addressed to them, startups their own, admins all
// @Tags Funding
// @Produce json
// @Param status query string false "pending, accepted or rejected"
// @Param after query string false "Resume after this id"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} utils.ListResponseStruct
// @Security CookieAuth
// @Router /funding [get]
func (h *FundingHandler) List(c *fiber.Ctx) error {
	p := page(c)
	items, err := services.ListFunding(c.UserContext(), h.Store, claims(c), c.Query("status"), p)
	if err != nil {
		return respondError(c, err, "funding.list")
	}
	return utils.ListResponse(c, items, services.NextCursor(items, p.Size()))
}

// Create handles POST /api/funding
// @Summary Request funding from an agency
// @Tags Funding
// @Accept json
// @Produce json
// @Param body body services.FundingInput true "Request"
// @Success 201 {object} models.FundingRequest
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /funding [post]
func (h *FundingHandler) Create(c *fiber.Ctx) error {
	var in services.FundingInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "funding.create")
	}
	req, err := services.CreateFunding(c.UserContext(), h.Store, claims(c), in)
	if err != nil {
		return respondError(c, err, "funding.create")
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// Get handles GET /api/funding/:id
// @Summary Get a funding request
// @Tags Funding
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} models.FundingRequest
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /funding/{id} [get]
func (h *FundingHandler) Get(c *fiber.Ctx) error {
	req, err := services.GetFunding(c.UserContext(), h.Store, claims(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "funding.get")
	}
	return c.JSON(req)
}

// Review handles PATCH /api/funding/:id/status
// @Summary Accept or reject a funding request addressed to you
// @Tags Funding
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param body body services.ReviewInput true "Decision"
// @Success 200 {object} models.FundingRequest
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /funding/{id}/status [patch]
func (h *FundingHandler) Review(c *fiber.Ctx) error {
	var in services.ReviewInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "funding.review")
	}
	req, err := services.ReviewFunding(c.UserContext(), h.Store, claims(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "funding.review")
	}
	return c.JSON(req)
}
