package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/config"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/store"
)

// AdminHandler handles the admin dashboard and health routes
type AdminHandler struct {
	Store  *store.Store
	Config *config.Config
}

// Dashboard handles GET /api/admin/dashboard
// @Summary Review queue counts
// @Tags Admin
// @Produce json
// @Success 200 {object} services.Dashboard
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	d, err := services.GetDashboard(c.UserContext(), h.Store)
	if err != nil {
		return respondError(c, err, "admin.dashboard")
	}
	return c.JSON(d)
}

// Health handles GET /api/health
// @Summary Service health
// @Tags Admin
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *AdminHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.Store)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
