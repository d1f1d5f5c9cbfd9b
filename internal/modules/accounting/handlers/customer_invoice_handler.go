package handlers

import (
	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type CustomerInvoiceHandler struct {
	invoices *services.CustomerInvoiceService
}

func NewCustomerInvoiceHandler(invoices *services.CustomerInvoiceService) *CustomerInvoiceHandler {
	return &CustomerInvoiceHandler{invoices: invoices}
}

// Create godoc
// @Summary Create a customer invoice
// @Tags customer-invoices
// @Accept json
// @Produce json
// @Param invoice body models.CustomerInvoiceRequest true "Customer invoice"
// @Success 201 {object} models.CustomerInvoice
// @Router /api/customer-invoices [post]
func (h *CustomerInvoiceHandler) Create(c *fiber.Ctx) error {
	var req models.CustomerInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	invoice, err := h.invoices.Create(req, auth.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func (h *CustomerInvoiceHandler) List(c *fiber.Ctx) error {
	filter := documentFilter(c)
	invoices, total, err := h.invoices.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(invoices, total, filter.Page, filter.Limit))
}

func (h *CustomerInvoiceHandler) Get(c *fiber.Ctx) error {
	invoice, err := h.invoices.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

func (h *CustomerInvoiceHandler) Update(c *fiber.Ctx) error {
	var req models.CustomerInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	invoice, err := h.invoices.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// Post moves a draft invoice into the receivable ledger and
// emails the customer when an address is on file.
func (h *CustomerInvoiceHandler) Post(c *fiber.Ctx) error {
	invoice, err := h.invoices.Post(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

func (h *CustomerInvoiceHandler) Cancel(c *fiber.Ctx) error {
	invoice, err := h.invoices.Cancel(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

func (h *CustomerInvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.invoices.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SendEmail re-sends the invoice to the customer's email address.
func (h *CustomerInvoiceHandler) SendEmail(c *fiber.Ctx) error {
	if err := h.invoices.SendEmail(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "invoice email sent"})
}

func (h *CustomerInvoiceHandler) GeneratePDF(c *fiber.Ctx) error {
	invoice, err := h.invoices.GeneratePDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}
