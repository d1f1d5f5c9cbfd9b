package handlers

import (
	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type PurchaseOrderHandler struct {
	orders *services.PurchaseOrderService
}

func NewPurchaseOrderHandler(orders *services.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orders: orders}
}

func documentFilter(c *fiber.Ctx) models.DocumentFilter {
	page, limit := parsePage(c)
	return models.DocumentFilter{
		Status:         c.Query("status"),
		CounterpartyID: c.Query("contact_id"),
		DateFrom:       parseDate(c, "date_from"),
		DateTo:         parseDate(c, "date_to"),
		Search:         c.Query("search"),
		Page:           page,
		Limit:          limit,
	}
}

// Create godoc
// @Summary Create a purchase order
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param order body models.PurchaseOrderRequest true "Purchase order"
// @Success 201 {object} models.PurchaseOrder
// @Router /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var req models.PurchaseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	order, err := h.orders.Create(req, auth.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce json
// @Param status query string false "Status filter"
// @Param contact_id query string false "Vendor filter"
// @Success 200 {object} map[string]interface{}
// @Router /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	filter := documentFilter(c)
	orders, total, err := h.orders.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(orders, total, filter.Page, filter.Limit))
}

func (h *PurchaseOrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	var req models.PurchaseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	order, err := h.orders.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *PurchaseOrderHandler) Confirm(c *fiber.Ctx) error {
	order, err := h.orders.Confirm(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *PurchaseOrderHandler) MarkReceived(c *fiber.Ctx) error {
	order, err := h.orders.MarkReceived(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *PurchaseOrderHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.orders.Cancel(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.orders.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GeneratePDF godoc
// @Summary Render and store the purchase order PDF
// @Tags purchase-orders
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} models.PurchaseOrder
// @Router /api/purchase-orders/{id}/pdf [post]
func (h *PurchaseOrderHandler) GeneratePDF(c *fiber.Ctx) error {
	order, err := h.orders.GeneratePDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
