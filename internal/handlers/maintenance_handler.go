package handlers

import (
	"bytes"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/services"
)

// MaintenanceHandler groups the catalog import/export endpoints.
type MaintenanceHandler struct {
	exportService services.ExportService
	importService services.ImportService
}

func NewMaintenanceHandler(exportService services.ExportService, importService services.ImportService) *MaintenanceHandler {
	return &MaintenanceHandler{exportService: exportService, importService: importService}
}

func (h *MaintenanceHandler) ExportItems(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.exportService.WriteItemsCSV(&buf, c.QueryBool("include_deleted")); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="items.csv"`)
	return c.Send(buf.Bytes())
}

func (h *MaintenanceHandler) ExportMovements(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.exportService.WriteMovementsCSV(&buf); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movements.csv"`)
	return c.Send(buf.Bytes())
}

func (h *MaintenanceHandler) ImportItems(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apierror.BadRequest("multipart 'file' field is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, apierror.BadRequest("could not read uploaded file"))
	}
	defer file.Close()

	summary, err := h.importService.ImportItemsCSV(file)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(summary)
}
