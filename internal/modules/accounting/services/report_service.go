package services

import (
	"sort"
	"time"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/core/export"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/shopspring/decimal"
)

const agingDetailLimit = 50

type ReportService struct {
	contactRepo repositories.ContactRepo
	productRepo repositories.ProductRepo
	accountRepo repositories.AnalyticalAccountRepo
	billRepo    repositories.VendorBillRepo
	invoiceRepo repositories.CustomerInvoiceRepo
	budgets     *BudgetService
}

func NewReportService(
	contactRepo repositories.ContactRepo,
	productRepo repositories.ProductRepo,
	accountRepo repositories.AnalyticalAccountRepo,
	billRepo repositories.VendorBillRepo,
	invoiceRepo repositories.CustomerInvoiceRepo,
	budgets *BudgetService,
) *ReportService {
	return &ReportService{
		contactRepo: contactRepo,
		productRepo: productRepo,
		accountRepo: accountRepo,
		billRepo:    billRepo,
		invoiceRepo: invoiceRepo,
		budgets:     budgets,
	}
}

// Dashboard is the landing-page snapshot: entity counts, month-to-date
// trade, outstanding balances and budget health.
func (s *ReportService) Dashboard() (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	var err error
	if summary.CustomerCount, err = s.contactRepo.CountCustomers(); err != nil {
		return nil, err
	}
	if summary.VendorCount, err = s.contactRepo.CountVendors(); err != nil {
		return nil, err
	}
	if summary.ProductCount, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if summary.PendingInvoices, err = s.invoiceRepo.CountOutstanding(); err != nil {
		return nil, err
	}
	if summary.PendingBills, err = s.billRepo.CountOutstanding(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if summary.MonthSales, err = s.invoiceRepo.SumPostedTotalBetween(monthStart, now); err != nil {
		return nil, err
	}
	if summary.MonthPurchases, err = s.billRepo.SumPostedTotalBetween(monthStart, now); err != nil {
		return nil, err
	}

	if summary.TotalReceivable, err = s.invoiceRepo.SumOutstandingDue(); err != nil {
		return nil, err
	}
	if summary.TotalPayable, err = s.billRepo.SumOutstandingDue(); err != nil {
		return nil, err
	}
	summary.NetPosition = summary.TotalReceivable.Sub(summary.TotalPayable)

	portfolio, err := s.budgets.Portfolio(models.BudgetFilter{}, nil, nil)
	if err != nil {
		return nil, err
	}
	summary.BudgetsOnTrack = portfolio.OnTrackCount
	summary.BudgetsOver = portfolio.OverCount

	return summary, nil
}

// MonthlyTrends returns posted sales and purchases for each calendar month
// of the given year, January first. A zero year means the current year.
func (s *ReportService) MonthlyTrends(year int) ([]models.MonthlyTrend, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	trends := make([]models.MonthlyTrend, 0, 12)

	for month := time.January; month <= time.December; month++ {
		monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		sales, err := s.invoiceRepo.SumPostedTotalBetween(monthStart, monthEnd)
		if err != nil {
			return nil, err
		}
		purchases, err := s.billRepo.SumPostedTotalBetween(monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		trends = append(trends, models.MonthlyTrend{
			Month:     monthStart.Format("2006-01"),
			Sales:     sales,
			Purchases: purchases,
			Profit:    sales.Sub(purchases),
		})
	}
	return trends, nil
}

func defaultPeriod(from, to *time.Time) (time.Time, time.Time) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	end := now
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}
	return start, end
}

// SalesSummary aggregates posted invoices over a period with the top ten
// customers by volume. Defaults to year-to-date.
func (s *ReportService) SalesSummary(from, to *time.Time) (*models.TradeSummary, error) {
	start, end := defaultPeriod(from, to)
	agg, err := s.invoiceRepo.SummaryBetween(start, end)
	if err != nil {
		return nil, err
	}
	top, err := s.invoiceRepo.TopCustomers(start, end, 10)
	if err != nil {
		return nil, err
	}
	return &models.TradeSummary{
		PeriodStart: start,
		PeriodEnd:   end,
		Count:       agg.Count,
		TotalAmount: agg.TotalAmount,
		TotalPaid:   agg.TotalPaid,
		TotalDue:    agg.TotalDue,
		TopContacts: top,
	}, nil
}

// PurchaseSummary mirrors SalesSummary over posted vendor bills.
func (s *ReportService) PurchaseSummary(from, to *time.Time) (*models.TradeSummary, error) {
	start, end := defaultPeriod(from, to)
	agg, err := s.billRepo.SummaryBetween(start, end)
	if err != nil {
		return nil, err
	}
	top, err := s.billRepo.TopVendors(start, end, 10)
	if err != nil {
		return nil, err
	}
	return &models.TradeSummary{
		PeriodStart: start,
		PeriodEnd:   end,
		Count:       agg.Count,
		TotalAmount: agg.TotalAmount,
		TotalPaid:   agg.TotalPaid,
		TotalDue:    agg.TotalDue,
		TopContacts: top,
	}, nil
}

// AnalyticalSummary totals posted income and expense per active analytical
// account, sorted by absolute net descending.
func (s *ReportService) AnalyticalSummary() (*models.AnalyticalSummary, error) {
	accounts, err := s.accountRepo.List(false)
	if err != nil {
		return nil, err
	}
	incomeTotals, err := s.invoiceRepo.PostedTotalsByAccount()
	if err != nil {
		return nil, err
	}
	expenseTotals, err := s.billRepo.PostedTotalsByAccount()
	if err != nil {
		return nil, err
	}

	incomeByAccount := make(map[string]decimal.Decimal, len(incomeTotals))
	for _, t := range incomeTotals {
		incomeByAccount[t.AccountID] = t.Total
	}
	expenseByAccount := make(map[string]decimal.Decimal, len(expenseTotals))
	for _, t := range expenseTotals {
		expenseByAccount[t.AccountID] = t.Total
	}

	summary := &models.AnalyticalSummary{
		Accounts:     make([]models.AccountActivity, 0, len(accounts)),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, account := range accounts {
		income := incomeByAccount[account.ID]
		expense := expenseByAccount[account.ID]
		activity := models.AccountActivity{
			AccountID:    account.ID,
			AccountCode:  account.Code,
			AccountName:  account.Name,
			TotalIncome:  income,
			TotalExpense: expense,
			Net:          income.Sub(expense),
		}
		summary.Accounts = append(summary.Accounts, activity)
		summary.TotalIncome = summary.TotalIncome.Add(income)
		summary.TotalExpense = summary.TotalExpense.Add(expense)
	}
	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)

	sort.SliceStable(summary.Accounts, func(i, j int) bool {
		return summary.Accounts[i].Net.Abs().GreaterThan(summary.Accounts[j].Net.Abs())
	})
	return summary, nil
}

type agingEntry struct {
	number    string
	contactID string
	dueDate   *time.Time
	amountDue decimal.Decimal
}

// buildAging buckets open documents by days overdue at asOf. Documents
// without a due date are skipped.
func (s *ReportService) buildAging(entries []agingEntry, asOf time.Time) (*models.AgingReport, error) {
	report := &models.AgingReport{
		AsOf: asOf,
		Buckets: map[string]*models.AgingBucket{
			"current": {Amount: decimal.Zero},
			"1_30":    {Amount: decimal.Zero},
			"31_60":   {Amount: decimal.Zero},
			"61_90":   {Amount: decimal.Zero},
			"over_90": {Amount: decimal.Zero},
		},
		Total: decimal.Zero,
	}
	asOfDate := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	contactNames := map[string]string{}
	for _, entry := range entries {
		if entry.dueDate == nil {
			continue
		}
		due := entry.dueDate.UTC()
		dueDate := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
		days := int(asOfDate.Sub(dueDate).Hours() / 24)

		var key string
		switch {
		case days <= 0:
			key = "current"
		case days <= 30:
			key = "1_30"
		case days <= 60:
			key = "31_60"
		case days <= 90:
			key = "61_90"
		default:
			key = "over_90"
		}
		bucket := report.Buckets[key]
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(entry.amountDue)
		report.Total = report.Total.Add(entry.amountDue)

		name, ok := contactNames[entry.contactID]
		if !ok {
			if contact, err := s.contactRepo.GetByID(entry.contactID); err == nil {
				name = contact.Name
			}
			contactNames[entry.contactID] = name
		}

		daysOverdue := days
		if daysOverdue < 0 {
			daysOverdue = 0
		}
		report.Details = append(report.Details, models.AgingDetail{
			DocumentNumber: entry.number,
			ContactName:    name,
			DueDate:        *entry.dueDate,
			AmountDue:      entry.amountDue,
			DaysOverdue:    daysOverdue,
		})
	}

	sort.SliceStable(report.Details, func(i, j int) bool {
		return report.Details[i].DaysOverdue > report.Details[j].DaysOverdue
	})
	if len(report.Details) > agingDetailLimit {
		report.Details = report.Details[:agingDetailLimit]
	}
	return report, nil
}

// ReceivablesAging buckets outstanding posted invoices by days overdue.
func (s *ReportService) ReceivablesAging() (*models.AgingReport, error) {
	invoices, err := s.invoiceRepo.ListOutstanding()
	if err != nil {
		return nil, err
	}
	entries := make([]agingEntry, 0, len(invoices))
	for _, inv := range invoices {
		entries = append(entries, agingEntry{
			number:    inv.InvoiceNumber,
			contactID: inv.CustomerID,
			dueDate:   inv.DueDate,
			amountDue: inv.AmountDue,
		})
	}
	return s.buildAging(entries, time.Now().UTC())
}

// PayablesAging buckets outstanding posted bills by days overdue.
func (s *ReportService) PayablesAging() (*models.AgingReport, error) {
	bills, err := s.billRepo.ListOutstanding()
	if err != nil {
		return nil, err
	}
	entries := make([]agingEntry, 0, len(bills))
	for _, bill := range bills {
		entries = append(entries, agingEntry{
			number:    bill.BillNumber,
			contactID: bill.VendorID,
			dueDate:   bill.DueDate,
			amountDue: bill.AmountDue,
		})
	}
	return s.buildAging(entries, time.Now().UTC())
}

// AgingExcel exports the requested aging report ("receivable" or "payable")
// as a workbook.
func (s *ReportService) AgingExcel(kind string) ([]byte, error) {
	var report *models.AgingReport
	var err error
	switch kind {
	case "receivable":
		report, err = s.ReceivablesAging()
	case "payable":
		report, err = s.PayablesAging()
	default:
		return nil, apperr.InvalidRequest("aging kind must be receivable or payable")
	}
	if err != nil {
		return nil, err
	}

	bucketRows := [][]interface{}{}
	for _, key := range []string{"current", "1_30", "31_60", "61_90", "over_90"} {
		bucket := report.Buckets[key]
		amount, _ := bucket.Amount.Float64()
		bucketRows = append(bucketRows, []interface{}{key, bucket.Count, amount})
	}
	total, _ := report.Total.Float64()
	bucketRows = append(bucketRows, []interface{}{"total", nil, total})

	detailRows := make([][]interface{}, 0, len(report.Details))
	for _, detail := range report.Details {
		amountDue, _ := detail.AmountDue.Float64()
		detailRows = append(detailRows, []interface{}{
			detail.DocumentNumber,
			detail.ContactName,
			detail.DueDate.Format("2006-01-02"),
			amountDue,
			detail.DaysOverdue,
		})
	}

	return export.WriteExcel([]export.ExcelSheet{
		{
			Name:    "Summary",
			Headers: []string{"Bucket", "Count", "Amount"},
			Rows:    bucketRows,
		},
		{
			Name:    "Details",
			Headers: []string{"Document", "Contact", "Due Date", "Amount Due", "Days Overdue"},
			Rows:    detailRows,
		},
	})
}

// BudgetPortfolioExcel exports budget performance as a workbook. The
// override window narrows actuals the same way the performance endpoint does.
func (s *ReportService) BudgetPortfolioExcel(filter models.BudgetFilter, periodStart, periodEnd *time.Time) ([]byte, error) {
	portfolio, err := s.budgets.Portfolio(filter, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(portfolio.Budgets))
	for _, perf := range portfolio.Budgets {
		budgeted, _ := perf.BudgetedAmount.Float64()
		actual, _ := perf.ActualAmount.Float64()
		remaining, _ := perf.RemainingAmount.Float64()
		achievement, _ := perf.AchievementPct.Float64()
		status := "on_track"
		if !perf.OnTrack {
			status = "over"
		}
		rows = append(rows, []interface{}{
			perf.Name,
			perf.AccountCode,
			perf.BudgetType,
			perf.PeriodStart.Format("2006-01-02"),
			perf.PeriodEnd.Format("2006-01-02"),
			budgeted,
			actual,
			remaining,
			achievement,
			status,
		})
	}

	return export.WriteExcel([]export.ExcelSheet{{
		Name: "Budget Performance",
		Headers: []string{
			"Budget", "Account", "Type", "Period Start", "Period End",
			"Budgeted", "Actual", "Remaining", "Achievement %", "Status",
		},
		Rows: rows,
	}})
}
