package handlers

import (
	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type SalesOrderHandler struct {
	orders *services.SalesOrderService
}

func NewSalesOrderHandler(orders *services.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{orders: orders}
}

// Create godoc
// @Summary Create a sales order
// @Tags sales-orders
// @Accept json
// @Produce json
// @Param order body models.SalesOrderRequest true "Sales order"
// @Success 201 {object} models.SalesOrder
// @Router /api/sales-orders [post]
func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var req models.SalesOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	order, err := h.orders.Create(req, auth.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *SalesOrderHandler) List(c *fiber.Ctx) error {
	filter := documentFilter(c)
	orders, total, err := h.orders.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(orders, total, filter.Page, filter.Limit))
}

func (h *SalesOrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *SalesOrderHandler) Update(c *fiber.Ctx) error {
	var req models.SalesOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	order, err := h.orders.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *SalesOrderHandler) Confirm(c *fiber.Ctx) error {
	order, err := h.orders.Confirm(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *SalesOrderHandler) MarkDelivered(c *fiber.Ctx) error {
	order, err := h.orders.MarkDelivered(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *SalesOrderHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.orders.Cancel(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *SalesOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.orders.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SalesOrderHandler) GeneratePDF(c *fiber.Ctx) error {
	order, err := h.orders.GeneratePDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
