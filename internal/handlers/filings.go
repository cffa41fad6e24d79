package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/ledger"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/similarity"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/utils"
)

// FilingHandler handles IP filing routes.
// Ledger is nil when no contract is configured; LedgerTimeout bounds a request's wait for it.
type FilingHandler struct {
	Store           *store.Store
	Ledger          ledger.Recorder
	LedgerTimeout   time.Duration
	Scorer          similarity.Scorer
	SimilarityLimit int
}

func (h *FilingHandler) ledgerContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.LedgerTimeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.LedgerTimeout)
}

// List handles GET /api/filings
// @Summary List IP filings
// @Description Admins and IP professionals see every filing, everyone else their own
// @Tags Filings
// @Produce json
// @Param kind query string false "patent, trademark, copyright or trade-secret"
// @Param status query string false "pending, accepted or rejected"
// @Param after query string false "Resume after this id"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} utils.ListResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /filings [get]
func (h *FilingHandler) List(c *fiber.Ctx) error {
	f := services.FilingFilter{Kind: c.Query("kind"), Status: c.Query("status"), Page: page(c)}
	items, err := services.ListFilings(c.UserContext(), h.Store, claims(c), f)
	if err != nil {
		return respondError(c, err, "filings.list")
	}
	return utils.ListResponse(c, items, services.NextCursor(items, f.Page.Size()))
}

// Create handles POST /api/filings/:kind
// @Summary Submit an IP filing
// @Tags Filings
// @Accept json
// @Produce json
// @Param kind path string true "patent, trademark, copyright or trade-secret"
// @Param body body services.FilingInput true "Filing"
// @Success 201 {object} models.Filing
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /filings/{kind} [post]
func (h *FilingHandler) Create(c *fiber.Ctx) error {
	kind, err := models.ParseFilingKind(c.Params("kind"))
	if err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"kind": "must be one of: patent trademark copyright trade-secret"})
	}
	var in services.FilingInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "filings.create")
	}
	filing, err := services.CreateFiling(c.UserContext(), h.Store, claims(c), kind, in)
	if err != nil {
		return respondError(c, err, "filings.create")
	}
	return c.Status(fiber.StatusCreated).JSON(filing)
}

// Get handles GET /api/filings/:id
// @Summary Get an IP filing
// @Tags Filings
// @Produce json
// @Param id path string true "Filing id"
// @Success 200 {object} models.Filing
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /filings/{id} [get]
func (h *FilingHandler) Get(c *fiber.Ctx) error {
	filing, err := services.GetFiling(c.UserContext(), h.Store, claims(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "filings.get")
	}
	return c.JSON(filing)
}

// Delete handles DELETE /api/filings/:id
// @Summary Withdraw a pending IP filing
// @Tags Filings
// @Param id path string true "Filing id"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /filings/{id} [delete]
func (h *FilingHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteFiling(c.UserContext(), h.Store, claims(c), c.Params("id")); err != nil {
		return respondError(c, err, "filings.delete")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Review handles PATCH /api/filings/:id/status
// @Summary Accept or reject a pending IP filing
// @Description The decision is recorded on the ledger when one is configured; a ledger failure is kept on the filing and does not undo the decision
// @Tags Filings
// @Accept json
// @Produce json
// @Param id path string true "Filing id"
// @Param body body services.ReviewInput true "Decision"
// @Success 200 {object} models.Filing
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /filings/{id}/status [patch]
func (h *FilingHandler) Review(c *fiber.Ctx) error {
	var in services.ReviewInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "filings.review")
	}
	ctx, cancel := h.ledgerContext(c)
	defer cancel()

	filing, err := services.ReviewFiling(ctx, h.Store, h.Ledger, claims(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "filings.review")
	}
	return c.JSON(filing)
}

// RetryLedger handles POST /api/filings/:id/ledger
// @Summary Resubmit a filing decision to the ledger
// @Description Allowed when the ledger record is missing, failed or pending for longer than the ledger wait
// @Tags Filings
// @Produce json
// @Param id path string true "Filing id"
// @Success 200 {object} models.Filing
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /filings/{id}/ledger [post]
func (h *FilingHandler) RetryLedger(c *fiber.Ctx) error {
	ctx, cancel := h.ledgerContext(c)
	defer cancel()

	filing, err := services.RetryLedger(ctx, h.Store, h.Ledger, c.Params("id"), h.LedgerTimeout)
	if err != nil {
		return respondError(c, err, "filings.ledger")
	}
	return c.JSON(filing)
}

// Similarity handles POST /api/filings/:id/similarity
// @Summary Compare a filing with every other filing of its kind
// @Tags Filings
// @Produce json
// @Param id path string true "Filing id"
// @Param limit query int false "Number of results"
// @Success 200 {object} utils.ListResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /filings/{id}/similarity [post]
func (h *FilingHandler) Similarity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.SimilarityLimit)
	results, err := services.CompareFiling(c.UserContext(), h.Store, h.Scorer, c.Params("id"), limit)
	if err != nil {
		return respondError(c, err, "filings.similarity")
	}
	return utils.ListResponse(c, results, "")
}
