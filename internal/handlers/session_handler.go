package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/services"
)

type SessionHandler struct {
	service services.SessionService
}

func NewSessionHandler(service services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.service.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"email": user.Email, "role": user.Role})
}

func (h *SessionHandler) Me(c *fiber.Ctx) error {
	claims := currentClaims(c)
	if claims == nil {
		return respondError(c, apierror.Unauthorized("not logged in"))
	}
	return c.JSON(fiber.Map{
		"email":               claims.Email,
		"role":                claims.Role,
		"max_clearance_level": claims.MaxClearanceLevel,
	})
}

func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(http.StatusNoContent)
}
