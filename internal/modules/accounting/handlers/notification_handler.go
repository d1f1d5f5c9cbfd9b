package handlers

import (
	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/core/notification"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notifications *notification.Service
}

func NewNotificationHandler(notifications *notification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List godoc
// @Summary Notifications for the signed-in user
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum entries, newest first"
// @Success 200 {object} map[string]interface{}
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	items, err := h.notifications.List(auth.UserID(c), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": items})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notifications.UnreadCount(auth.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notifications.MarkRead(auth.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.notifications.MarkAllRead(auth.UserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
