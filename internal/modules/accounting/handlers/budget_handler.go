package handlers

import (
	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type BudgetHandler struct {
	budgets *services.BudgetService
}

func NewBudgetHandler(budgets *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

func budgetFilter(c *fiber.Ctx) models.BudgetFilter {
	page, limit := parsePage(c)
	return models.BudgetFilter{
		AnalyticalAccountID: c.Query("analytical_account_id"),
		BudgetType:          c.Query("budget_type"),
		IncludeArchived:     c.QueryBool("include_archived", false),
		PeriodFrom:          parseDate(c, "period_from"),
		PeriodTo:            parseDate(c, "period_to"),
		Page:                page,
		Limit:               limit,
	}
}

// Create godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body models.BudgetRequest true "Budget"
// @Success 201 {object} models.Budget
// @Router /api/budgets [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var req models.BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	budget, err := h.budgets.Create(req, auth.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(budget)
}

func (h *BudgetHandler) List(c *fiber.Ctx) error {
	filter := budgetFilter(c)
	budgets, total, err := h.budgets.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(budgets, total, filter.Page, filter.Limit))
}

func (h *BudgetHandler) Get(c *fiber.Ctx) error {
	budget, err := h.budgets.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(budget)
}

// Update changes budget fields; a change to the budgeted amount
// records a revision with the previous value.
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	var req models.BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	budget, err := h.budgets.Update(c.Params("id"), req, auth.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(budget)
}

func (h *BudgetHandler) ListRevisions(c *fiber.Ctx) error {
	revisions, err := h.budgets.ListRevisions(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": revisions})
}

// Performance godoc
// @Summary Budget vs actuals for one budget
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Param period_start query string false "Override actuals window start"
// @Param period_end query string false "Override actuals window end"
// @Success 200 {object} models.BudgetPerformance
// @Router /api/budgets/{id}/performance [get]
func (h *BudgetHandler) Performance(c *fiber.Ctx) error {
	perf, err := h.budgets.Performance(c.Params("id"), parseDate(c, "period_start"), parseDate(c, "period_end"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(perf)
}

// Portfolio godoc
// @Summary Budget vs actuals across all active budgets
// @Tags budgets
// @Produce json
// @Param period_start query string false "Override actuals window start"
// @Param period_end query string false "Override actuals window end"
// @Success 200 {object} models.BudgetPortfolio
// @Router /api/budgets/performance [get]
func (h *BudgetHandler) Portfolio(c *fiber.Ctx) error {
	portfolio, err := h.budgets.Portfolio(budgetFilter(c), parseDate(c, "period_start"), parseDate(c, "period_end"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(portfolio)
}

func (h *BudgetHandler) ToggleArchive(c *fiber.Ctx) error {
	budget, err := h.budgets.ToggleArchive(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(budget)
}

func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	if err := h.budgets.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
