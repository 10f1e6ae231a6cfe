package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/services"
)

type SystemHandler struct {
	service services.SystemService
}

func NewSystemHandler(service services.SystemService) *SystemHandler {
	return &SystemHandler{service: service}
}

func (h *SystemHandler) CreateSystem(c *fiber.Ctx) error {
	var req struct {
		Code  string `json:"code"`
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	system, err := h.service.CreateSystem(req.Code, req.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(system)
}

func (h *SystemHandler) GetSystemByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	system, err := h.service.GetSystemByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(system)
}

func (h *SystemHandler) ListSystems(c *fiber.Ctx) error {
	systems, err := h.service.GetSystems(c.QueryBool("include_deleted"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(systems)
}

func (h *SystemHandler) UpdateSystem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req struct {
		Code  string `json:"code"`
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	system, err := h.service.UpdateSystem(id, req.Code, req.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(system)
}

func (h *SystemHandler) DeleteSystem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteSystem(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *SystemHandler) RestoreSystem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	system, err := h.service.RestoreSystem(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(system)
}
