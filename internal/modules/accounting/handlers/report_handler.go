package handlers

import (
	"fmt"
	"time"

	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard godoc
// @Summary Headline numbers for the landing page
// @Tags reports
// @Produce json
// @Success 200 {object} models.DashboardSummary
// @Router /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.reports.Dashboard()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// MonthlyTrends returns sales, purchases and profit per calendar month.
// The year query selects the year, defaulting to the current one.
func (h *ReportHandler) MonthlyTrends(c *fiber.Ctx) error {
	trends, err := h.reports.MonthlyTrends(c.QueryInt("year", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": trends})
}

func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	summary, err := h.reports.SalesSummary(parseDate(c, "date_from"), parseDate(c, "date_to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

func (h *ReportHandler) PurchaseSummary(c *fiber.Ctx) error {
	summary, err := h.reports.PurchaseSummary(parseDate(c, "date_from"), parseDate(c, "date_to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// AnalyticalSummary godoc
// @Summary Income and expense totals per analytical account
// @Tags reports
// @Produce json
// @Success 200 {object} models.AnalyticalSummary
// @Router /api/reports/analytical-summary [get]
func (h *ReportHandler) AnalyticalSummary(c *fiber.Ctx) error {
	summary, err := h.reports.AnalyticalSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// ReceivablesAging godoc
// @Summary Outstanding customer invoices bucketed by days overdue
// @Tags reports
// @Produce json
// @Success 200 {object} models.AgingReport
// @Router /api/reports/receivables-aging [get]
func (h *ReportHandler) ReceivablesAging(c *fiber.Ctx) error {
	report, err := h.reports.ReceivablesAging()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

func (h *ReportHandler) PayablesAging(c *fiber.Ctx) error {
	report, err := h.reports.PayablesAging()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

func sendExcel(c *fiber.Ctx, name string, data []byte) error {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// AgingExcel godoc
// @Summary Download an aging report as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "receivable or payable"
// @Success 200 {file} binary
// @Router /api/reports/aging/{kind}/excel [get]
func (h *ReportHandler) AgingExcel(c *fiber.Ctx) error {
	kind := c.Params("kind")
	data, err := h.reports.AgingExcel(kind)
	if err != nil {
		return respondError(c, err)
	}
	return sendExcel(c, kind+"_aging", data)
}

func (h *ReportHandler) BudgetPortfolioExcel(c *fiber.Ctx) error {
	data, err := h.reports.BudgetPortfolioExcel(budgetFilter(c), parseDate(c, "period_start"), parseDate(c, "period_end"))
	if err != nil {
		return respondError(c, err)
	}
	return sendExcel(c, "budget_performance", data)
}
