package handlers

import (
	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Create godoc
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body models.PaymentRequest true "Payment"
// @Success 201 {object} models.Payment
// @Router /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req models.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	payment, err := h.payments.Create(req, auth.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// List godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Param payment_type query string false "incoming or outgoing"
// @Param contact_id query string false "Contact filter"
// @Success 200 {object} map[string]interface{}
// @Router /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	page, limit := parsePage(c)
	filter := models.PaymentFilter{
		PaymentType: c.Query("payment_type"),
		ContactID:   c.Query("contact_id"),
		InvoiceID:   c.Query("invoice_id"),
		BillID:      c.Query("bill_id"),
		DateFrom:    parseDate(c, "date_from"),
		DateTo:      parseDate(c, "date_to"),
		Page:        page,
		Limit:       limit,
	}
	payments, total, err := h.payments.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(payments, total, page, limit))
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	payment, err := h.payments.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}

// Update edits the descriptive fields of a payment. Amounts and
// linked documents are immutable once recorded.
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var req models.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	payment, err := h.payments.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}

// Delete reverses the payment against its linked document before
// removing the record.
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.payments.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PaymentHandler) ToggleReconcile(c *fiber.Ctx) error {
	payment, err := h.payments.ToggleReconcile(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}
