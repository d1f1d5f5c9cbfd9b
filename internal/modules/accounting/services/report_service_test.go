package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	service     *ReportService
	contactRepo *fakeContactRepo
	productRepo *fakeProductRepo
	accountRepo *fakeAccountRepo
	billRepo    *fakeVendorBillRepo
	invoiceRepo *fakeCustomerInvoiceRepo
	budgetRepo  *fakeBudgetRepo
}

func newReportFixture() *reportFixture {
	contactRepo := newFakeContactRepo()
	productRepo := newFakeProductRepo()
	accountRepo := newFakeAccountRepo()
	billRepo := newFakeVendorBillRepo()
	invoiceRepo := newFakeCustomerInvoiceRepo()
	budgetRepo := newFakeBudgetRepo()

	budgets := NewBudgetService(budgetRepo, accountRepo, billRepo, invoiceRepo)
	return &reportFixture{
		service:     NewReportService(contactRepo, productRepo, accountRepo, billRepo, invoiceRepo, budgets),
		contactRepo: contactRepo,
		productRepo: productRepo,
		accountRepo: accountRepo,
		billRepo:    billRepo,
		invoiceRepo: invoiceRepo,
		budgetRepo:  budgetRepo,
	}
}

func daysAgo(n int) *time.Time {
	d := time.Now().UTC().AddDate(0, 0, -n)
	return &d
}

func (f *reportFixture) addOutstandingInvoice(number string, due *time.Time, amountDue string) {
	customer := &models.Contact{Name: "Acme", ContactType: models.ContactTypeCustomer}
	_ = f.contactRepo.Create(customer)
	f.invoiceRepo.outstanding = append(f.invoiceRepo.outstanding, models.CustomerInvoice{
		InvoiceNumber: number,
		CustomerID:    customer.ID,
		DueDate:       due,
		AmountDue:     dec(amountDue),
	})
}

func TestReceivablesAgingBuckets(t *testing.T) {
	f := newReportFixture()
	f.addOutstandingInvoice("INV-1", daysAgo(-10), "100") // not yet due
	f.addOutstandingInvoice("INV-2", daysAgo(15), "200")
	f.addOutstandingInvoice("INV-3", daysAgo(45), "300")
	f.addOutstandingInvoice("INV-4", daysAgo(75), "400")
	f.addOutstandingInvoice("INV-5", daysAgo(120), "500")

	report, err := f.service.ReceivablesAging()
	require.NoError(t, err)

	assert.Equal(t, 1, report.Buckets["current"].Count)
	assert.True(t, report.Buckets["current"].Amount.Equal(dec("100")))
	assert.True(t, report.Buckets["1_30"].Amount.Equal(dec("200")))
	assert.True(t, report.Buckets["31_60"].Amount.Equal(dec("300")))
	assert.True(t, report.Buckets["61_90"].Amount.Equal(dec("400")))
	assert.True(t, report.Buckets["over_90"].Amount.Equal(dec("500")))
	assert.True(t, report.Total.Equal(dec("1500")))
}

func TestReceivablesAgingDetailOrderAndClamp(t *testing.T) {
	f := newReportFixture()
	f.addOutstandingInvoice("INV-OLD", daysAgo(40), "300")
	f.addOutstandingInvoice("INV-FUTURE", daysAgo(-5), "100")
	f.addOutstandingInvoice("INV-RECENT", daysAgo(10), "200")

	report, err := f.service.ReceivablesAging()
	require.NoError(t, err)
	require.Len(t, report.Details, 3)

	// Most overdue first, future due dates clamp to zero days.
	assert.Equal(t, "INV-OLD", report.Details[0].DocumentNumber)
	assert.Equal(t, 40, report.Details[0].DaysOverdue)
	assert.Equal(t, "INV-RECENT", report.Details[1].DocumentNumber)
	assert.Equal(t, "INV-FUTURE", report.Details[2].DocumentNumber)
	assert.Equal(t, 0, report.Details[2].DaysOverdue)
	assert.Equal(t, "Acme", report.Details[0].ContactName)
}

func TestReceivablesAgingSkipsMissingDueDate(t *testing.T) {
	f := newReportFixture()
	f.addOutstandingInvoice("INV-NODATE", nil, "999")
	f.addOutstandingInvoice("INV-DUE", daysAgo(5), "50")

	report, err := f.service.ReceivablesAging()
	require.NoError(t, err)

	assert.Len(t, report.Details, 1)
	assert.True(t, report.Total.Equal(dec("50")))
}

func TestPayablesAging(t *testing.T) {
	f := newReportFixture()
	vendor := &models.Contact{Name: "Supplies Co", ContactType: models.ContactTypeVendor}
	_ = f.contactRepo.Create(vendor)
	f.billRepo.outstanding = append(f.billRepo.outstanding, models.VendorBill{
		BillNumber: "BILL-1",
		VendorID:   vendor.ID,
		DueDate:    daysAgo(35),
		AmountDue:  dec("750"),
	})

	report, err := f.service.PayablesAging()
	require.NoError(t, err)

	assert.Equal(t, 1, report.Buckets["31_60"].Count)
	assert.True(t, report.Total.Equal(dec("750")))
	require.Len(t, report.Details, 1)
	assert.Equal(t, "Supplies Co", report.Details[0].ContactName)
}

func TestAgingExcelRejectsUnknownKind(t *testing.T) {
	f := newReportFixture()
	_, err := f.service.AgingExcel("sideways")
	assert.True(t, apperr.IsInvalidRequest(err))
}

func TestAgingExcelProducesWorkbook(t *testing.T) {
	f := newReportFixture()
	f.addOutstandingInvoice("INV-1", daysAgo(10), "100")

	data, err := f.service.AgingExcel("receivable")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestAnalyticalSummary(t *testing.T) {
	f := newReportFixture()
	marketing := &models.AnalyticalAccount{Code: "MKT", Name: "Marketing"}
	sales := &models.AnalyticalAccount{Code: "SLS", Name: "Sales"}
	_ = f.accountRepo.Create(marketing)
	_ = f.accountRepo.Create(sales)
	f.billRepo.actuals[marketing.ID] = dec("400")
	f.invoiceRepo.actuals[sales.ID] = dec("1000")

	summary, err := f.service.AnalyticalSummary()
	require.NoError(t, err)

	require.Len(t, summary.Accounts, 2)
	// Sorted by absolute net descending.
	assert.Equal(t, "SLS", summary.Accounts[0].AccountCode)
	assert.True(t, summary.Accounts[0].Net.Equal(dec("1000")))
	assert.Equal(t, "MKT", summary.Accounts[1].AccountCode)
	assert.True(t, summary.Accounts[1].Net.Equal(dec("-400")))
	assert.True(t, summary.TotalIncome.Equal(dec("1000")))
	assert.True(t, summary.TotalExpense.Equal(dec("400")))
	assert.True(t, summary.Net.Equal(dec("600")))
}

func TestMonthlyTrendsForYear(t *testing.T) {
	f := newReportFixture()
	f.invoiceRepo.postedByMonth = map[string]decimal.Decimal{"2025-03": dec("1000")}
	f.billRepo.postedByMonth = map[string]decimal.Decimal{"2025-03": dec("400")}

	trends, err := f.service.MonthlyTrends(2025)
	require.NoError(t, err)

	require.Len(t, trends, 12)
	assert.Equal(t, "2025-01", trends[0].Month)
	assert.Equal(t, "2025-12", trends[11].Month)

	march := trends[2]
	assert.Equal(t, "2025-03", march.Month)
	assert.True(t, march.Sales.Equal(dec("1000")))
	assert.True(t, march.Purchases.Equal(dec("400")))
	assert.True(t, march.Profit.Equal(dec("600")))
	assert.True(t, trends[5].Sales.IsZero())
}

func TestMonthlyTrendsDefaultsToCurrentYear(t *testing.T) {
	f := newReportFixture()

	trends, err := f.service.MonthlyTrends(0)
	require.NoError(t, err)

	require.Len(t, trends, 12)
	year := time.Now().UTC().Year()
	assert.Equal(t, fmt.Sprintf("%d-01", year), trends[0].Month)
}

func TestDashboardCountsAndPosition(t *testing.T) {
	f := newReportFixture()
	_ = f.contactRepo.Create(&models.Contact{Name: "Acme", ContactType: models.ContactTypeCustomer})
	_ = f.contactRepo.Create(&models.Contact{Name: "Supplies Co", ContactType: models.ContactTypeVendor})
	_ = f.productRepo.Create(&models.Product{Name: "Steel Bolt", SKU: "BOLT-10"})
	f.invoiceRepo.outstanding = []models.CustomerInvoice{{InvoiceNumber: "INV-1", AmountDue: dec("500")}}
	f.billRepo.outstanding = []models.VendorBill{{BillNumber: "BILL-1", AmountDue: dec("200")}}

	summary, err := f.service.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.CustomerCount)
	assert.Equal(t, int64(1), summary.VendorCount)
	assert.Equal(t, int64(1), summary.ProductCount)
	assert.Equal(t, int64(1), summary.PendingInvoices)
	assert.Equal(t, int64(1), summary.PendingBills)
	assert.True(t, summary.TotalReceivable.Equal(dec("500")))
	assert.True(t, summary.TotalPayable.Equal(dec("200")))
	assert.True(t, summary.NetPosition.Equal(dec("300")))
}
