package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/dto"
	"Shelved/internal/services"
)

type MovementHandler struct {
	service services.MovementService
}

func NewMovementHandler(service services.MovementService) *MovementHandler {
	return &MovementHandler{service: service}
}

func (h *MovementHandler) Receive(c *fiber.Ctx) error {
	var req dto.ReceiveInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	movement, err := h.service.Receive(req, currentClaims(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(movement)
}

func (h *MovementHandler) Issue(c *fiber.Ctx) error {
	var req dto.IssueInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	movement, err := h.service.Issue(req, currentClaims(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(movement)
}

func (h *MovementHandler) Return(c *fiber.Ctx) error {
	var req dto.ReturnInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	movement, err := h.service.Return(req, currentClaims(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(movement)
}

func (h *MovementHandler) Adjust(c *fiber.Ctx) error {
	var req dto.AdjustInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	movement, err := h.service.Adjust(req, currentClaims(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(movement)
}

func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var req dto.TransferInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	movements, err := h.service.Transfer(req, currentClaims(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(movements)
}

func (h *MovementHandler) ListMovements(c *fiber.Ctx) error {
	filter := dto.MovementFilter{
		Kind:     c.Query("kind"),
		Holder:   c.Query("holder"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 100),
	}
	if v := c.QueryInt("item_id", 0); v > 0 {
		id := uint(v)
		filter.ItemID = &id
	}
	if v := c.QueryInt("shelf_id", 0); v > 0 {
		id := uint(v)
		filter.ShelfID = &id
	}
	page, err := h.service.List(filter, maxClearanceOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (h *MovementHandler) CurrentOutByHolder(c *fiber.Ctx) error {
	var itemID *uint
	if v := c.QueryInt("item_id", 0); v > 0 {
		id := uint(v)
		itemID = &id
	}
	rows, err := h.service.OutByHolder(c.Query("holder"), itemID, maxClearanceOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *MovementHandler) Overdue(c *fiber.Ctx) error {
	rows, err := h.service.Overdue(c.Query("holder"), maxClearanceOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
