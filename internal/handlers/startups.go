package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/utils"
)

// StartupHandler handles startup profile and metrics routes
type StartupHandler struct {
	Store *store.Store
}

func listFilter(c *fiber.Ctx) services.ListFilter {
	return services.ListFilter{
		Status: c.Query("status"),
		Mine:   queryBool(c, "mine"),
		Page:   page(c),
	}
}

// List handles GET /api/startups
// @Summary List startups
// @Description Anonymous callers see accepted startups; admins and funding agencies see all; mine=true lists your own
// @Tags Startups
// @Produce json
// @Param status query string false "pending, accepted or rejected"
// @Param mine query bool false "Only your own startups"
// @Param after query string false "Resume after this id"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} utils.ListResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /startups [get]
func (h *StartupHandler) List(c *fiber.Ctx) error {
	f := listFilter(c)
	items, err := services.ListStartups(c.UserContext(), h.Store, claims(c), f)
	if err != nil {
		return respondError(c, err, "startups.list")
	}
	return utils.ListResponse(c, items, services.NextCursor(items, f.Page.Size()))
}

// Create handles POST /api/startups
// @Summary Submit a startup profile
// @Tags Startups
// @Accept json
// @Produce json
// @Param body body services.StartupInput true "Profile"
// @Success 201 {object} models.Startup
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /startups [post]
func (h *StartupHandler) Create(c *fiber.Ctx) error {
	var in services.StartupInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "startups.create")
	}
	st, err := services.CreateStartup(c.UserContext(), h.Store, claims(c), in)
	if err != nil {
		return respondError(c, err, "startups.create")
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// Get handles GET /api/startups/:id
// @Summary Get a startup
// @Tags Startups
// @Produce json
// @Param id path string true "Startup id"
// @Success 200 {object} models.Startup
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /startups/{id} [get]
func (h *StartupHandler) Get(c *fiber.Ctx) error {
	st, err := services.GetStartup(c.UserContext(), h.Store, claims(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "startups.get")
	}
	return c.JSON(st)
}

// Update handles PUT /api/startups/:id
// @Summary Update your startup profile
// @Description An edit returns a reviewed profile to pending; it fails with 409 when a review lands first
// @Tags Startups
// @Accept json
// @Produce json
// @Param id path string true "Startup id"
// @Param body body services.StartupInput true "Profile"
// @Success 200 {object} models.Startup
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /startups/{id} [put]
func (h *StartupHandler) Update(c *fiber.Ctx) error {
	var in services.StartupInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "startups.update")
	}
	st, err := services.UpdateStartup(c.UserContext(), h.Store, claims(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "startups.update")
	}
	return c.JSON(st)
}

// Delete handles DELETE /api/startups/:id
// @Summary Delete a startup
// @Tags Startups
// @Param id path string true "Startup id"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /startups/{id} [delete]
func (h *StartupHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteStartup(c.UserContext(), h.Store, claims(c), c.Params("id")); err != nil {
		return respondError(c, err, "startups.delete")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Review handles PATCH /api/startups/:id/status
// @Summary Accept or reject a pending startup
// @Tags Startups
// @Accept json
// @Produce json
// @Param id path string true "Startup id"
// @Param body body services.ReviewInput true "Decision"
// @Success 200 {object} models.Startup
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /startups/{id}/status [patch]
func (h *StartupHandler) Review(c *fiber.Ctx) error {
	var in services.ReviewInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "startups.review")
	}
	st, err := services.ReviewStartup(c.UserContext(), h.Store, claims(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "startups.review")
	}
	return c.JSON(st)
}

// Metrics handles GET /api/startups/:id/metrics
// @Summary Startup metrics series
// @Tags Startups
// @Produce json
// @Param id path string true "Startup id"
// @Success 200 {object} utils.ListResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /startups/{id}/metrics [get]
func (h *StartupHandler) Metrics(c *fiber.Ctx) error {
	series, err := services.ListMetrics(c.UserContext(), h.Store, claims(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "metrics.list")
	}
	return utils.ListResponse(c, series, "")
}

// RecordMetric handles POST /api/startups/:id/metrics
// @Summary Report a period of startup metrics
// @Description Replaces an earlier report for the same period
// @Tags Startups
// @Accept json
// @Produce json
// @Param id path string true "Startup id"
// @Param body body services.MetricInput true "Figures"
// @Success 200 {object} models.StartupMetric
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /startups/{id}/metrics [post]
func (h *StartupHandler) RecordMetric(c *fiber.Ctx) error {
	var in services.MetricInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "metrics.record")
	}
	metric, err := services.RecordMetric(c.UserContext(), h.Store, claims(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "metrics.record")
	}
	return c.JSON(metric)
}
