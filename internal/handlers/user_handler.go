package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/dto"
	"Shelved/internal/models"
	"Shelved/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers returns the admin view for admins and the public
// email+role projection for everyone else.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	claims := currentClaims(c)
	if claims != nil && claims.Role == models.RoleAdmin {
		users, err := h.service.ListAdmin()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(users)
	}
	users, err := h.service.ListPublic()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.UserCreate
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	user, err := h.service.CreateUser(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UserUpdate
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	if err := h.service.UpdateUser(id, req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteUser(id, currentClaims(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	if err := h.service.ResetPassword(id, req.Password); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
