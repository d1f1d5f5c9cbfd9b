package handlers

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type AnalyticalAccountHandler struct {
	accounts *services.AnalyticalAccountService
}

func NewAnalyticalAccountHandler(accounts *services.AnalyticalAccountService) *AnalyticalAccountHandler {
	return &AnalyticalAccountHandler{accounts: accounts}
}

func (h *AnalyticalAccountHandler) Create(c *fiber.Ctx) error {
	var req models.AnalyticalAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	account, err := h.accounts.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func (h *AnalyticalAccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.accounts.List(c.QueryBool("include_archived", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": accounts})
}

// Tree godoc
// @Summary Analytical account hierarchy
// @Tags analytical-accounts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analytical-accounts/tree [get]
func (h *AnalyticalAccountHandler) Tree(c *fiber.Ctx) error {
	tree, err := h.accounts.Tree(c.QueryBool("include_archived", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": tree})
}

func (h *AnalyticalAccountHandler) Get(c *fiber.Ctx) error {
	account, err := h.accounts.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

func (h *AnalyticalAccountHandler) Update(c *fiber.Ctx) error {
	var req models.AnalyticalAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	account, err := h.accounts.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

func (h *AnalyticalAccountHandler) ToggleArchive(c *fiber.Ctx) error {
	account, err := h.accounts.ToggleArchive(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

func (h *AnalyticalAccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.accounts.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
