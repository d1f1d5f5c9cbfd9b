package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucket aggregates open documents by how long past due they are.
type AgingBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// AgingDetail is one open document in the aging report detail list.
type AgingDetail struct {
	DocumentNumber string          `json:"document_number"`
	ContactName    string          `json:"contact_name"`
	DueDate        time.Time       `json:"due_date"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	DaysOverdue    int             `json:"days_overdue"`
}

// AgingReport buckets outstanding receivables or payables: current (not yet
// due), then 1-30, 31-60, 61-90 and over 90 days past due.
type AgingReport struct {
	AsOf    time.Time               `json:"as_of"`
	Buckets map[string]*AgingBucket `json:"buckets"`
	Details []AgingDetail           `json:"details"`
	Total   decimal.Decimal         `json:"total"`
}

// DashboardSummary is the landing-page snapshot.
type DashboardSummary struct {
	CustomerCount int64 `json:"customer_count"`
	VendorCount   int64 `json:"vendor_count"`
	ProductCount  int64 `json:"product_count"`

	PendingInvoices int64 `json:"pending_invoices"`
	PendingBills    int64 `json:"pending_bills"`

	MonthSales     decimal.Decimal `json:"month_sales"`
	MonthPurchases decimal.Decimal `json:"month_purchases"`

	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	NetPosition     decimal.Decimal `json:"net_position"`

	BudgetsOnTrack int `json:"budgets_on_track"`
	BudgetsOver    int `json:"budgets_over"`
}

// MonthlyTrend is one month of the 12-month sales/purchases series.
type MonthlyTrend struct {
	Month     string          `json:"month"` // YYYY-MM
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
	Profit    decimal.Decimal `json:"profit"`
}

// CounterpartyTotal is one row of a top-counterparties ranking.
type CounterpartyTotal struct {
	ContactID   string          `json:"contact_id"`
	ContactName string          `json:"contact_name"`
	Total       decimal.Decimal `json:"total"`
}

// TradeSummary aggregates posted sales or purchases over a period.
type TradeSummary struct {
	PeriodStart time.Time           `json:"period_start"`
	PeriodEnd   time.Time           `json:"period_end"`
	Count       int64               `json:"count"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	TotalPaid   decimal.Decimal     `json:"total_paid"`
	TotalDue    decimal.Decimal     `json:"total_due"`
	TopContacts []CounterpartyTotal `json:"top_contacts"`
}

// AccountActivity is one analytical account's posted income/expense totals.
type AccountActivity struct {
	AccountID    string          `json:"account_id"`
	AccountCode  string          `json:"account_code"`
	AccountName  string          `json:"account_name"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

// AnalyticalSummary lists account activity sorted by absolute net, with
// grand totals.
type AnalyticalSummary struct {
	Accounts     []AccountActivity `json:"accounts"`
	TotalIncome  decimal.Decimal   `json:"total_income"`
	TotalExpense decimal.Decimal   `json:"total_expense"`
	Net          decimal.Decimal   `json:"net"`
}

// BudgetPortfolio is the budget performance report over all active budgets.
type BudgetPortfolio struct {
	Budgets       []BudgetPerformance `json:"budgets"`
	TotalBudgeted decimal.Decimal     `json:"total_budgeted"`
	TotalActual   decimal.Decimal     `json:"total_actual"`
	OnTrackCount  int                 `json:"on_track_count"`
	OverCount     int                 `json:"over_count"`
}
