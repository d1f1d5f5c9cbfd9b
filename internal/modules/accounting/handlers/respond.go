package handlers

import (
	"time"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case apperr.IsNotFound(err):
		status = fiber.StatusNotFound
	case apperr.IsInvalidRequest(err), apperr.IsInvalidState(err):
		status = fiber.StatusBadRequest
	case apperr.IsConflict(err):
		status = fiber.StatusConflict
	case apperr.IsForbidden(err):
		status = fiber.StatusForbidden
	}
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parsePage(c *fiber.Ctx) (page, limit int) {
	return c.QueryInt("page", 1), c.QueryInt("limit", 20)
}

func parseDate(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}

func listResponse(items interface{}, total int64, page, limit int) fiber.Map {
	return fiber.Map{
		"data":  items,
		"total": total,
		"page":  page,
		"limit": limit,
	}
}
