package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-dashboard/internal/application/auth"
	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthHandler construye el handler de auth. La cookie de sesión dura sessionTTL.
func NewAuthHandler(uc *auth.AuthUseCase, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{uc: uc, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

// Login godoc
// @Summary      Iniciar sesión con email y password
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.Credentials  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.AuthFailureResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.Credentials
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, msg, err := h.uc.Authenticate(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: auth.MsgSomethingWentWrong})
	}
	if session == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthFailureResponse{Message: msg})
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(session)
}

// Logout borra la cookie de sesión.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}
