package handlers

import (
	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type VendorBillHandler struct {
	bills *services.VendorBillService
}

func NewVendorBillHandler(bills *services.VendorBillService) *VendorBillHandler {
	return &VendorBillHandler{bills: bills}
}

// Create godoc
// @Summary Record a vendor bill
// @Tags vendor-bills
// @Accept json
// @Produce json
// @Param bill body models.VendorBillRequest true "Vendor bill"
// @Success 201 {object} models.VendorBill
// @Router /api/vendor-bills [post]
func (h *VendorBillHandler) Create(c *fiber.Ctx) error {
	var req models.VendorBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	bill, err := h.bills.Create(req, auth.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

func (h *VendorBillHandler) List(c *fiber.Ctx) error {
	filter := documentFilter(c)
	bills, total, err := h.bills.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(bills, total, filter.Page, filter.Limit))
}

func (h *VendorBillHandler) Get(c *fiber.Ctx) error {
	bill, err := h.bills.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

func (h *VendorBillHandler) Update(c *fiber.Ctx) error {
	var req models.VendorBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	bill, err := h.bills.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// Post moves a draft bill into the payable ledger.
func (h *VendorBillHandler) Post(c *fiber.Ctx) error {
	bill, err := h.bills.Post(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

func (h *VendorBillHandler) Cancel(c *fiber.Ctx) error {
	bill, err := h.bills.Cancel(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

func (h *VendorBillHandler) Delete(c *fiber.Ctx) error {
	if err := h.bills.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *VendorBillHandler) GeneratePDF(c *fiber.Ctx) error {
	bill, err := h.bills.GeneratePDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}
