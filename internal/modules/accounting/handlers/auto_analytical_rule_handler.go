package handlers

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type AutoAnalyticalRuleHandler struct {
	rules *services.AutoAnalyticalRuleService
}

func NewAutoAnalyticalRuleHandler(rules *services.AutoAnalyticalRuleService) *AutoAnalyticalRuleHandler {
	return &AutoAnalyticalRuleHandler{rules: rules}
}

func (h *AutoAnalyticalRuleHandler) Create(c *fiber.Ctx) error {
	var req models.AutoAnalyticalRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	rule, err := h.rules.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

func (h *AutoAnalyticalRuleHandler) List(c *fiber.Ctx) error {
	rules, err := h.rules.List(c.QueryBool("include_inactive", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": rules})
}

// RuleTypes lists the supported matching strategies.
func (h *AutoAnalyticalRuleHandler) RuleTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.rules.RuleTypes()})
}

func (h *AutoAnalyticalRuleHandler) Get(c *fiber.Ctx) error {
	rule, err := h.rules.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rule)
}

func (h *AutoAnalyticalRuleHandler) Update(c *fiber.Ctx) error {
	var req models.AutoAnalyticalRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	rule, err := h.rules.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rule)
}

func (h *AutoAnalyticalRuleHandler) ToggleActive(c *fiber.Ctx) error {
	rule, err := h.rules.ToggleActive(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rule)
}

func (h *AutoAnalyticalRuleHandler) Delete(c *fiber.Ctx) error {
	if err := h.rules.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TestClassification godoc
// @Summary Dry-run the classification engine
// @Tags auto-analytical-rules
// @Accept json
// @Produce json
// @Param input body services.TestClassificationRequest true "Candidate document"
// @Success 200 {object} map[string]interface{}
// @Router /api/auto-analytical-rules/test [post]
func (h *AutoAnalyticalRuleHandler) TestClassification(c *fiber.Ctx) error {
	var req services.TestClassificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	account, err := h.rules.TestClassification(req)
	if err != nil {
		return respondError(c, err)
	}
	if account == nil {
		return c.JSON(fiber.Map{"matched": false, "account": nil})
	}
	return c.JSON(fiber.Map{"matched": true, "account": account})
}
