package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/utils"
)

// PaperHandler handles research paper routes
type PaperHandler struct {
	Store *store.Store
}

// List handles GET /api/papers
// @Summary List research papers
// @Tags Papers
// @Produce json
// @Param status query string false "pending, accepted or rejected"
// @Param mine query bool false "Only your own papers"
// @Param after query string false "Resume after this id"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} utils.ListResponseStruct
// @Router /papers [get]
func (h *PaperHandler) List(c *fiber.Ctx) error {
	f := listFilter(c)
	items, err := services.ListPapers(c.UserContext(), h.Store, claims(c), f)
	if err != nil {
		return respondError(c, err, "papers.list")
	}
	return utils.ListResponse(c, items, services.NextCursor(items, f.Page.Size()))
}

// Create handles POST /api/papers
// @Summary Submit a research paper
// @Tags Papers
// @Accept json
// @Produce json
// @Param body body services.PaperInput true "Paper"
// @Success 201 {object} models.ResearchPaper
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /papers [post]
func (h *PaperHandler) Create(c *fiber.Ctx) error {
	var in services.PaperInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "papers.create")
	}
	paper, err := services.CreatePaper(c.UserContext(), h.Store, claims(c), in)
	if err != nil {
		return respondError(c, err, "papers.create")
	}
	return c.Status(fiber.StatusCreated).JSON(paper)
}

// Get handles GET /api/papers/:id
// @Summary Get a research paper
// @Tags Papers
// @Produce json
// @Param id path string true "Paper id"
// @Success 200 {object} models.ResearchPaper
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /papers/{id} [get]
func (h *PaperHandler) Get(c *fiber.Ctx) error {
	paper, err := services.GetPaper(c.UserContext(), h.Store, claims(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "papers.get")
	}
	return c.JSON(paper)
}

// Delete handles DELETE /api/papers/:id
// @Summary Delete a research paper
// @Tags Papers
// @Param id path string true "Paper id"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /papers/{id} [delete]
func (h *PaperHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeletePaper(c.UserContext(), h.Store, claims(c), c.Params("id")); err != nil {
		return respondError(c, err, "papers.delete")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Review handles PATCH /api/papers/:id/status
// @Summary Accept or reject a pending paper
// @Tags Papers
// @Accept json
// @Produce json
// @Param id path string true "Paper id"
// @Param body body services.ReviewInput true "Decision"
// @Success 200 {object} models.ResearchPaper
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /papers/{id}/status [patch]
func (h *PaperHandler) Review(c *fiber.Ctx) error {
	var in services.ReviewInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "papers.review")
	}
	paper, err := services.ReviewPaper(c.UserContext(), h.Store, claims(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "papers.review")
	}
	return c.JSON(paper)
}
