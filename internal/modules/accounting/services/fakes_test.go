package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/bizledger/bizledger-be/internal/core/export"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories. GetByID returns a copy so
// callers cannot mutate stored state without going through Update.

func newFakeID() string {
	return uuid.New().String()
}

func strp(s string) *string {
	return &s
}

// windowedActual pins a posted-total sum to an exact query window, so tests
// can show different actuals for different periods.
type windowedActual struct {
	accountID string
	from, to  time.Time
	amount    decimal.Decimal
}

type fakeNumbers struct{ n int }

func (f *fakeNumbers) Next(prefix string, at time.Time) (string, error) {
	f.n++
	return fmt.Sprintf("%s-%s-%04d", prefix, at.Format("200601"), f.n), nil
}

type fakeContactRepo struct {
	contacts        map[string]models.Contact
	hasTransactions bool
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[string]models.Contact{}}
}

func (f *fakeContactRepo) Create(c *models.Contact) error {
	if c.ID == "" {
		c.ID = newFakeID()
	}
	f.contacts[c.ID] = *c
	return nil
}

func (f *fakeContactRepo) GetByID(id string) (*models.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeContactRepo) List(filter models.ContactFilter) ([]models.Contact, int64, error) {
	out := make([]models.Contact, 0, len(f.contacts))
	for _, c := range f.contacts {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeContactRepo) Update(c *models.Contact) error {
	f.contacts[c.ID] = *c
	return nil
}

func (f *fakeContactRepo) Delete(id string) error {
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactRepo) HasTransactions(contactID string) (bool, error) {
	return f.hasTransactions, nil
}

func (f *fakeContactRepo) countByType(match func(models.Contact) bool) int64 {
	var n int64
	for _, c := range f.contacts {
		if !c.IsArchived && match(c) {
			n++
		}
	}
	return n
}

func (f *fakeContactRepo) CountCustomers() (int64, error) {
	return f.countByType(func(c models.Contact) bool { return c.IsCustomer() }), nil
}

func (f *fakeContactRepo) CountVendors() (int64, error) {
	return f.countByType(func(c models.Contact) bool { return c.IsVendor() }), nil
}

type fakeProductRepo struct {
	products map[string]models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]models.Product{}}
}

func (f *fakeProductRepo) Create(p *models.Product) error {
	if p.ID == "" {
		p.ID = newFakeID()
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*models.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			out := p
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) List(filter models.ProductFilter) ([]models.Product, int64, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Update(p *models.Product) error {
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Count() (int64, error) {
	var n int64
	for _, p := range f.products {
		if !p.IsArchived {
			n++
		}
	}
	return n, nil
}

type fakeAccountRepo struct {
	accounts    map[string]models.AnalyticalAccount
	hasChildren bool
	hasBudgets  bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]models.AnalyticalAccount{}}
}

func (f *fakeAccountRepo) Create(a *models.AnalyticalAccount) error {
	if a.ID == "" {
		a.ID = newFakeID()
	}
	f.accounts[a.ID] = *a
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*models.AnalyticalAccount, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeAccountRepo) GetByCode(code string) (*models.AnalyticalAccount, error) {
	for _, a := range f.accounts {
		if a.Code == code {
			out := a
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) List(includeArchived bool) ([]models.AnalyticalAccount, error) {
	out := make([]models.AnalyticalAccount, 0, len(f.accounts))
	for _, a := range f.accounts {
		if !includeArchived && a.IsArchived {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (f *fakeAccountRepo) Update(a *models.AnalyticalAccount) error {
	f.accounts[a.ID] = *a
	return nil
}

func (f *fakeAccountRepo) Delete(id string) error {
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) HasChildren(id string) (bool, error) { return f.hasChildren, nil }
func (f *fakeAccountRepo) HasBudgets(id string) (bool, error)  { return f.hasBudgets, nil }

type fakeRuleRepo struct {
	rules []models.AutoAnalyticalRule
}

func (f *fakeRuleRepo) Create(r *models.AutoAnalyticalRule) error {
	if r.ID == "" {
		r.ID = newFakeID()
	}
	f.rules = append(f.rules, *r)
	return nil
}

func (f *fakeRuleRepo) GetByID(id string) (*models.AutoAnalyticalRule, error) {
	for _, r := range f.rules {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRuleRepo) List(includeInactive bool) ([]models.AutoAnalyticalRule, error) {
	out := make([]models.AutoAnalyticalRule, 0, len(f.rules))
	for _, r := range f.rules {
		if !includeInactive && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// ListActiveOrdered mirrors the SQL ordering: priority descending with
// insertion order as the tie-break.
func (f *fakeRuleRepo) ListActiveOrdered() ([]models.AutoAnalyticalRule, error) {
	out := make([]models.AutoAnalyticalRule, 0, len(f.rules))
	for _, r := range f.rules {
		if r.IsActive {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out, nil
}

func (f *fakeRuleRepo) Update(r *models.AutoAnalyticalRule) error {
	for i := range f.rules {
		if f.rules[i].ID == r.ID {
			f.rules[i] = *r
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRuleRepo) Delete(id string) error {
	for i := range f.rules {
		if f.rules[i].ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakePurchaseOrderRepo struct {
	orders   map[string]models.PurchaseOrder
	hasBills bool
}

func newFakePurchaseOrderRepo() *fakePurchaseOrderRepo {
	return &fakePurchaseOrderRepo{orders: map[string]models.PurchaseOrder{}}
}

func (f *fakePurchaseOrderRepo) Create(po *models.PurchaseOrder) error {
	if po.ID == "" {
		po.ID = newFakeID()
	}
	f.orders[po.ID] = *po
	return nil
}

func (f *fakePurchaseOrderRepo) GetByID(id string) (*models.PurchaseOrder, error) {
	po, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &po, nil
}

func (f *fakePurchaseOrderRepo) List(filter models.DocumentFilter) ([]models.PurchaseOrder, int64, error) {
	out := make([]models.PurchaseOrder, 0, len(f.orders))
	for _, po := range f.orders {
		out = append(out, po)
	}
	return out, int64(len(out)), nil
}

func (f *fakePurchaseOrderRepo) ListByVendor(vendorID string) ([]models.PurchaseOrder, error) {
	var out []models.PurchaseOrder
	for _, po := range f.orders {
		if po.VendorID == vendorID {
			out = append(out, po)
		}
	}
	return out, nil
}

func (f *fakePurchaseOrderRepo) Update(po *models.PurchaseOrder) error {
	f.orders[po.ID] = *po
	return nil
}

func (f *fakePurchaseOrderRepo) Delete(id string) error {
	delete(f.orders, id)
	return nil
}

func (f *fakePurchaseOrderRepo) HasBills(poID string) (bool, error) { return f.hasBills, nil }

type fakeSalesOrderRepo struct {
	orders      map[string]models.SalesOrder
	hasInvoices bool
}

func newFakeSalesOrderRepo() *fakeSalesOrderRepo {
	return &fakeSalesOrderRepo{orders: map[string]models.SalesOrder{}}
}

func (f *fakeSalesOrderRepo) Create(so *models.SalesOrder) error {
	if so.ID == "" {
		so.ID = newFakeID()
	}
	f.orders[so.ID] = *so
	return nil
}

func (f *fakeSalesOrderRepo) GetByID(id string) (*models.SalesOrder, error) {
	so, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &so, nil
}

func (f *fakeSalesOrderRepo) List(filter models.DocumentFilter) ([]models.SalesOrder, int64, error) {
	out := make([]models.SalesOrder, 0, len(f.orders))
	for _, so := range f.orders {
		out = append(out, so)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSalesOrderRepo) ListByCustomer(customerID string) ([]models.SalesOrder, error) {
	var out []models.SalesOrder
	for _, so := range f.orders {
		if so.CustomerID == customerID {
			out = append(out, so)
		}
	}
	return out, nil
}

func (f *fakeSalesOrderRepo) Update(so *models.SalesOrder) error {
	f.orders[so.ID] = *so
	return nil
}

func (f *fakeSalesOrderRepo) Delete(id string) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeSalesOrderRepo) HasInvoices(soID string) (bool, error) { return f.hasInvoices, nil }

type fakeVendorBillRepo struct {
	bills         map[string]models.VendorBill
	outstanding   []models.VendorBill
	actuals       map[string]decimal.Decimal
	windowed      []windowedActual
	postedByMonth map[string]decimal.Decimal
}

func newFakeVendorBillRepo() *fakeVendorBillRepo {
	return &fakeVendorBillRepo{
		bills:   map[string]models.VendorBill{},
		actuals: map[string]decimal.Decimal{},
	}
}

func (f *fakeVendorBillRepo) Create(b *models.VendorBill) error {
	if b.ID == "" {
		b.ID = newFakeID()
	}
	f.bills[b.ID] = *b
	return nil
}

func (f *fakeVendorBillRepo) GetByID(id string) (*models.VendorBill, error) {
	b, ok := f.bills[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeVendorBillRepo) List(filter models.DocumentFilter) ([]models.VendorBill, int64, error) {
	out := make([]models.VendorBill, 0, len(f.bills))
	for _, b := range f.bills {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeVendorBillRepo) Update(b *models.VendorBill) error {
	f.bills[b.ID] = *b
	return nil
}

func (f *fakeVendorBillRepo) Delete(id string) error {
	delete(f.bills, id)
	return nil
}

func (f *fakeVendorBillRepo) ListOutstanding() ([]models.VendorBill, error) {
	return f.outstanding, nil
}

func (f *fakeVendorBillRepo) CountOutstanding() (int64, error) {
	return int64(len(f.outstanding)), nil
}

func (f *fakeVendorBillRepo) SumOutstandingDue() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range f.outstanding {
		total = total.Add(b.AmountDue)
	}
	return total, nil
}

func (f *fakeVendorBillRepo) SumPostedTotalBetween(from, to time.Time) (decimal.Decimal, error) {
	if v, ok := f.postedByMonth[from.Format("2006-01")]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (f *fakeVendorBillRepo) SumPostedTotalForAccount(accountID string, from, to time.Time) (decimal.Decimal, error) {
	for _, w := range f.windowed {
		if w.accountID == accountID && w.from.Equal(from) && w.to.Equal(to) {
			return w.amount, nil
		}
	}
	if v, ok := f.actuals[accountID]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (f *fakeVendorBillRepo) PostedTotalsByAccount() ([]repositories.AccountTotal, error) {
	var out []repositories.AccountTotal
	for id, v := range f.actuals {
		out = append(out, repositories.AccountTotal{AccountID: id, Total: v})
	}
	return out, nil
}

func (f *fakeVendorBillRepo) SummaryBetween(from, to time.Time) (repositories.TradeAggregate, error) {
	return repositories.TradeAggregate{}, nil
}

func (f *fakeVendorBillRepo) TopVendors(from, to time.Time, limit int) ([]models.CounterpartyTotal, error) {
	return nil, nil
}

type fakeCustomerInvoiceRepo struct {
	invoices      map[string]models.CustomerInvoice
	outstanding   []models.CustomerInvoice
	overdue       []models.CustomerInvoice
	actuals       map[string]decimal.Decimal
	windowed      []windowedActual
	postedByMonth map[string]decimal.Decimal
}

func newFakeCustomerInvoiceRepo() *fakeCustomerInvoiceRepo {
	return &fakeCustomerInvoiceRepo{
		invoices: map[string]models.CustomerInvoice{},
		actuals:  map[string]decimal.Decimal{},
	}
}

func (f *fakeCustomerInvoiceRepo) Create(inv *models.CustomerInvoice) error {
	if inv.ID == "" {
		inv.ID = newFakeID()
	}
	f.invoices[inv.ID] = *inv
	return nil
}

func (f *fakeCustomerInvoiceRepo) GetByID(id string) (*models.CustomerInvoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &inv, nil
}

func (f *fakeCustomerInvoiceRepo) List(filter models.DocumentFilter) ([]models.CustomerInvoice, int64, error) {
	out := make([]models.CustomerInvoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, inv)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerInvoiceRepo) ListByCustomer(customerID string) ([]models.CustomerInvoice, error) {
	var out []models.CustomerInvoice
	for _, inv := range f.invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeCustomerInvoiceRepo) Update(inv *models.CustomerInvoice) error {
	f.invoices[inv.ID] = *inv
	return nil
}

func (f *fakeCustomerInvoiceRepo) Delete(id string) error {
	delete(f.invoices, id)
	return nil
}

func (f *fakeCustomerInvoiceRepo) ListOutstanding() ([]models.CustomerInvoice, error) {
	return f.outstanding, nil
}

func (f *fakeCustomerInvoiceRepo) ListOverdue(asOf time.Time) ([]models.CustomerInvoice, error) {
	return f.overdue, nil
}

func (f *fakeCustomerInvoiceRepo) CountOutstanding() (int64, error) {
	return int64(len(f.outstanding)), nil
}

func (f *fakeCustomerInvoiceRepo) SumOutstandingDue() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, inv := range f.outstanding {
		total = total.Add(inv.AmountDue)
	}
	return total, nil
}

func (f *fakeCustomerInvoiceRepo) SumPostedTotalBetween(from, to time.Time) (decimal.Decimal, error) {
	if v, ok := f.postedByMonth[from.Format("2006-01")]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (f *fakeCustomerInvoiceRepo) SumPostedTotalForAccount(accountID string, from, to time.Time) (decimal.Decimal, error) {
	for _, w := range f.windowed {
		if w.accountID == accountID && w.from.Equal(from) && w.to.Equal(to) {
			return w.amount, nil
		}
	}
	if v, ok := f.actuals[accountID]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (f *fakeCustomerInvoiceRepo) PostedTotalsByAccount() ([]repositories.AccountTotal, error) {
	var out []repositories.AccountTotal
	for id, v := range f.actuals {
		out = append(out, repositories.AccountTotal{AccountID: id, Total: v})
	}
	return out, nil
}

func (f *fakeCustomerInvoiceRepo) SummaryBetween(from, to time.Time) (repositories.TradeAggregate, error) {
	return repositories.TradeAggregate{}, nil
}

func (f *fakeCustomerInvoiceRepo) TopCustomers(from, to time.Time, limit int) ([]models.CounterpartyTotal, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	payments     map[string]models.Payment
	savedInvoice *models.CustomerInvoice
	savedBill    *models.VendorBill
	// mirrors so applied documents are visible through their own repos
	invoiceRepo *fakeCustomerInvoiceRepo
	billRepo    *fakeVendorBillRepo
}

func newFakePaymentRepo(invoiceRepo *fakeCustomerInvoiceRepo, billRepo *fakeVendorBillRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		payments:    map[string]models.Payment{},
		invoiceRepo: invoiceRepo,
		billRepo:    billRepo,
	}
}

func (f *fakePaymentRepo) apply(invoice *models.CustomerInvoice, bill *models.VendorBill) {
	f.savedInvoice = invoice
	f.savedBill = bill
	if invoice != nil && f.invoiceRepo != nil {
		f.invoiceRepo.invoices[invoice.ID] = *invoice
	}
	if bill != nil && f.billRepo != nil {
		f.billRepo.bills[bill.ID] = *bill
	}
}

func (f *fakePaymentRepo) CreateApplied(p *models.Payment, invoice *models.CustomerInvoice, bill *models.VendorBill) error {
	if p.ID == "" {
		p.ID = newFakeID()
	}
	f.payments[p.ID] = *p
	f.apply(invoice, bill)
	return nil
}

func (f *fakePaymentRepo) DeleteReversed(p *models.Payment, invoice *models.CustomerInvoice, bill *models.VendorBill) error {
	delete(f.payments, p.ID)
	f.apply(invoice, bill)
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakePaymentRepo) GetDetail(id string) (*models.PaymentDetail, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.PaymentDetail{Payment: p}, nil
}

func (f *fakePaymentRepo) List(filter models.PaymentFilter) ([]models.PaymentDetail, int64, error) {
	out := make([]models.PaymentDetail, 0, len(f.payments))
	for _, p := range f.payments {
		out = append(out, models.PaymentDetail{Payment: p})
	}
	return out, int64(len(out)), nil
}

func (f *fakePaymentRepo) Update(p *models.Payment) error {
	f.payments[p.ID] = *p
	return nil
}

type fakeBudgetRepo struct {
	budgets   map[string]models.Budget
	revisions []models.BudgetRevision
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: map[string]models.Budget{}}
}

func (f *fakeBudgetRepo) Create(b *models.Budget) error {
	if b.ID == "" {
		b.ID = newFakeID()
	}
	f.budgets[b.ID] = *b
	return nil
}

func (f *fakeBudgetRepo) GetByID(id string) (*models.Budget, error) {
	b, ok := f.budgets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeBudgetRepo) List(filter models.BudgetFilter) ([]models.Budget, int64, error) {
	out := make([]models.Budget, 0, len(f.budgets))
	for _, b := range f.budgets {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBudgetRepo) ListActive(filter models.BudgetFilter) ([]models.Budget, error) {
	var out []models.Budget
	for _, b := range f.budgets {
		if !b.IsArchived {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) Update(b *models.Budget) error {
	f.budgets[b.ID] = *b
	return nil
}

func (f *fakeBudgetRepo) UpdateWithRevision(b *models.Budget, revision *models.BudgetRevision) error {
	if revision.ID == "" {
		revision.ID = newFakeID()
	}
	f.budgets[b.ID] = *b
	f.revisions = append(f.revisions, *revision)
	return nil
}

func (f *fakeBudgetRepo) Delete(id string) error {
	delete(f.budgets, id)
	kept := f.revisions[:0]
	for _, r := range f.revisions {
		if r.BudgetID != id {
			kept = append(kept, r)
		}
	}
	f.revisions = kept
	return nil
}

func (f *fakeBudgetRepo) ListRevisions(budgetID string) ([]models.BudgetRevision, error) {
	var out []models.BudgetRevision
	for _, r := range f.revisions {
		if r.BudgetID == budgetID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakePortalOrderRepo struct {
	orders map[string]models.PortalPaymentOrder
}

func newFakePortalOrderRepo() *fakePortalOrderRepo {
	return &fakePortalOrderRepo{orders: map[string]models.PortalPaymentOrder{}}
}

func (f *fakePortalOrderRepo) Create(o *models.PortalPaymentOrder) error {
	if o.ID == "" {
		o.ID = newFakeID()
	}
	f.orders[o.GatewayOrderID] = *o
	return nil
}

func (f *fakePortalOrderRepo) GetByGatewayOrderID(gatewayOrderID string) (*models.PortalPaymentOrder, error) {
	o, ok := f.orders[gatewayOrderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

func (f *fakePortalOrderRepo) Update(o *models.PortalPaymentOrder) error {
	f.orders[o.GatewayOrderID] = *o
	return nil
}

// Collaborator fakes.

type fakeMailer struct {
	invoicesSent      int
	confirmationsSent int
}

func (f *fakeMailer) SendInvoicePosted(invoice *models.CustomerInvoice, customer *models.Contact) error {
	f.invoicesSent++
	return nil
}

func (f *fakeMailer) SendPaymentConfirmation(payment *models.Payment, contact *models.Contact, invoiceNumber string) error {
	f.confirmationsSent++
	return nil
}

type fakeNotifier struct {
	titles []string
}

func (f *fakeNotifier) NotifyAdmins(title, message, category string) error {
	f.titles = append(f.titles, title)
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(data export.DocumentData) ([]byte, error) {
	return []byte("%PDF-1.4 " + data.Number), nil
}

type fakeFileStore struct {
	keys []string
}

func (f *fakeFileStore) Upload(key string, data []byte, contentType string) (string, error) {
	f.keys = append(f.keys, key)
	return "https://files.test/" + key, nil
}

type fakePortalUserRemover struct {
	removed []string
}

func (f *fakePortalUserRemover) DeleteByContactID(contactID string) error {
	f.removed = append(f.removed, contactID)
	return nil
}

type fakeQRProvider struct{}

func (fakeQRProvider) PaymentQR(amount decimal.Decimal, reference string) ([]byte, error) {
	return []byte("qr"), nil
}
