package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/middleware"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/utils"
)

// AuthHandler handles account and session routes
type AuthHandler struct {
	Store    *store.Store
	Sessions *services.Sessions
	Secure   bool
}

// SessionResponse is returned by register and login
type SessionResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

func (h *AuthHandler) startSession(c *fiber.Ctx, status int, user *models.User) error {
	token, expires, err := h.Sessions.Issue(user)
	if err != nil {
		return respondError(c, err, "auth.issue")
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Status(status).JSON(SessionResponse{User: user, Token: token, ExpiresAt: expires})
}

// Register handles POST /api/auth/register
// @Summary Register an account
// @Description Self-service signup for every role except admin; starts a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Account"
// @Success 201 {object} handlers.SessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "auth.register")
	}
	user, err := services.Register(c.UserContext(), h.Store, in)
	if err != nil {
		return respondError(c, err, "auth.register")
	}
	return h.startSession(c, fiber.StatusCreated, user)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Credentials"
// @Success 200 {object} handlers.SessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "auth.login")
	}
	user, err := services.Authenticate(c.UserContext(), h.Store, in)
	if err != nil {
		return respondError(c, err, "auth.login")
	}
	return h.startSession(c, fiber.StatusOK, user)
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Tags Auth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Me handles GET /api/auth/me
// @Summary Current account
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := services.CurrentUser(c.UserContext(), h.Store, claims(c))
	if err != nil {
		return respondError(c, err, "auth.me")
	}
	return c.JSON(user)
}

// Agencies handles GET /api/agencies
// @Summary List funding agencies
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.ListResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /agencies [get]
func (h *AuthHandler) Agencies(c *fiber.Ctx) error {
	agencies, err := services.ListAgencies(c.UserContext(), h.Store)
	if err != nil {
		return respondError(c, err, "agencies.list")
	}
	return utils.ListResponse(c, agencies, "")
}
