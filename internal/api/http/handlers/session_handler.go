package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kezig/logistics-service/internal/api/dto"
	"github.com/kezig/logistics-service/internal/auth"
	"github.com/kezig/logistics-service/internal/service"
)

// SessionHandler exposes login, refresh and logout endpoints.
type SessionHandler struct {
	auth *service.AuthService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(authService *service.AuthService) *SessionHandler {
	return &SessionHandler{auth: authService}
}

// Login handles POST /login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	token, expiresAt, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token, expiresAt)
	return c.JSON(dto.MessageResponse{Message: "login successful"})
}

// Refresh handles POST /refresh-token. The presented cookie must still be the
// caller's live session; the replacement invalidates it immediately.
func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	current := c.Cookies(auth.CookieName)
	if current == "" {
		return fiber.NewError(http.StatusUnauthorized, "not logged in")
	}

	token, expiresAt, err := h.auth.Refresh(current)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token, expiresAt)
	return c.JSON(dto.MessageResponse{Message: "token refreshed"})
}

// Logout handles POST /logout. Server-side revocation is best-effort; the
// cookie is always expired client-side.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(auth.CookieName); token != "" {
		h.auth.Logout(token)
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	return c.JSON(dto.MessageResponse{Message: "logged out"})
}

func (h *SessionHandler) setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  expiresAt,
		MaxAge:   int(h.auth.TokenTTL().Seconds()),
	})
}
