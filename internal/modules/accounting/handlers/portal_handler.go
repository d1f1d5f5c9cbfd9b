package handlers

import (
	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

// PortalHandler serves the customer self-service surface. Every route
// is scoped to the contact bound to the authenticated portal user.
type PortalHandler struct {
	portal *services.PortalService
}

func NewPortalHandler(portal *services.PortalService) *PortalHandler {
	return &PortalHandler{portal: portal}
}

func portalContact(c *fiber.Ctx) (string, error) {
	contactID := auth.ContactID(c)
	if contactID == "" {
		return "", c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "portal account is not linked to a contact"})
	}
	return contactID, nil
}

func (h *PortalHandler) Profile(c *fiber.Ctx) error {
	contactID, err := portalContact(c)
	if contactID == "" {
		return err
	}
	contact, err := h.portal.Profile(contactID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contact)
}

func (h *PortalHandler) UpdateProfile(c *fiber.Ctx) error {
	contactID, err := portalContact(c)
	if contactID == "" {
		return err
	}
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	contact, err := h.portal.UpdateProfile(contactID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contact)
}

// ListInvoices godoc
// @Summary Invoices addressed to the signed-in customer
// @Tags portal
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/portal/invoices [get]
func (h *PortalHandler) ListInvoices(c *fiber.Ctx) error {
	contactID, err := portalContact(c)
	if contactID == "" {
		return err
	}
	invoices, err := h.portal.ListInvoices(contactID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": invoices})
}

func (h *PortalHandler) GetInvoice(c *fiber.Ctx) error {
	contactID, err := portalContact(c)
	if contactID == "" {
		return err
	}
	invoice, err := h.portal.GetInvoice(contactID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

func (h *PortalHandler) ListOrders(c *fiber.Ctx) error {
	contactID, err := portalContact(c)
	if contactID == "" {
		return err
	}
	orders, err := h.portal.ListOrders(contactID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": orders})
}

func (h *PortalHandler) GetOrder(c *fiber.Ctx) error {
	contactID, err := portalContact(c)
	if contactID == "" {
		return err
	}
	order, err := h.portal.GetOrder(contactID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// InitiatePayment godoc
// @Summary Start an online payment for an open invoice
// @Tags portal
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} payment.Order
// @Router /api/portal/invoices/{id}/pay [post]
func (h *PortalHandler) InitiatePayment(c *fiber.Ctx) error {
	contactID, err := portalContact(c)
	if contactID == "" {
		return err
	}
	order, err := h.portal.InitiatePayment(contactID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// PaymentCallback completes a checkout once the gateway reports
// success. The signature is verified before any money is recorded.
func (h *PortalHandler) PaymentCallback(c *fiber.Ctx) error {
	var req services.PaymentCallbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	payment, err := h.portal.CompletePayment(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}
