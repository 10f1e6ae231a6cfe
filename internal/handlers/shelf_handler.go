package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/services"
)

type ShelfHandler struct {
	service services.ShelfService
}

func NewShelfHandler(service services.ShelfService) *ShelfHandler {
	return &ShelfHandler{service: service}
}

func (h *ShelfHandler) CreateShelf(c *fiber.Ctx) error {
	var req services.ShelfInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	shelf, err := h.service.CreateShelf(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(shelf)
}

func (h *ShelfHandler) GetShelfByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	shelf, err := h.service.GetShelfByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shelf)
}

func (h *ShelfHandler) ListShelves(c *fiber.Ctx) error {
	var systemID *uint
	if v := c.QueryInt("system_id", 0); v > 0 {
		id := uint(v)
		systemID = &id
	}
	shelves, err := h.service.GetShelves(systemID, c.QueryBool("include_deleted"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shelves)
}

func (h *ShelfHandler) UpdateShelf(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req services.ShelfInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	shelf, err := h.service.UpdateShelf(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shelf)
}

func (h *ShelfHandler) DeleteShelf(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteShelf(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ShelfHandler) RestoreShelf(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	shelf, err := h.service.RestoreShelf(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shelf)
}
