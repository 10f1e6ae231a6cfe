package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/middleware"
	"Shelved/internal/services"
)

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(apierror.StatusOf(err)).JSON(fiber.Map{"detail": err.Error()})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apierror.BadRequest("invalid id")
	}
	return uint(id), nil
}

// guestClearance is what an anonymous browser gets to see.
var guestClearance = 1

// maxClearanceOf resolves the caller's visibility ceiling: nil means
// unlimited (admins), guests are pinned to the lowest level.
func maxClearanceOf(c *fiber.Ctx) *int {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return &guestClearance
	}
	return claims.MaxClearance()
}

func currentClaims(c *fiber.Ctx) *services.Claims {
	return middleware.GetClaims(c)
}
