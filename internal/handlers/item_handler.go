package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/dto"
	"Shelved/internal/services"
)

type ItemHandler struct {
	service services.ItemService
}

func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.ItemCreate
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}

	addedBy := ""
	if claims := currentClaims(c); claims != nil {
		addedBy = claims.Email
	}
	row, err := h.service.CreateItem(req, addedBy)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(row)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	row, err := h.service.GetItem(id)
	if err != nil {
		return respondError(c, err)
	}

	role := ""
	if claims := currentClaims(c); claims != nil {
		role = claims.Role
	}
	actions := services.AllowedActions(role, services.ItemState{
		IsDeleted: row.IsDeleted != 0,
		Quantity:  row.Quantity,
		IsOut:     row.IsOut,
	})
	return c.JSON(fiber.Map{"item": row, "allowed_actions": actions})
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	query := services.ListQuery{
		Q:              c.Query("q"),
		Status:         c.Query("status"),
		IncludeDeleted: c.QueryBool("include_deleted"),
		SystemCode:     c.Query("system_code"),
		ShelfLabel:     c.Query("shelf_label"),
		Sort:           c.Query("sort"),
		Dir:            c.Query("dir"),
		Page:           c.QueryInt("page", 1),
		PageSize:       c.QueryInt("page_size", services.DefaultPageSize),
	}
	page, err := h.service.ListItems(query, maxClearanceOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.ItemPatch
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	row, err := h.service.UpdateItemPartial(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteItem(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ItemHandler) RestoreItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	row, err := h.service.RestoreItem(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

func (h *ItemHandler) GetTimeline(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	limit := c.QueryInt("limit", 50)
	movements, err := h.service.GetTimeline(id, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}
