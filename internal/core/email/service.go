package email

import (
	"fmt"

	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/rs/zerolog/log"
)

// Service renders the accounting email templates and hands them to the
// configured provider. A nil provider turns every send into a logged no-op,
// which keeps development environments working without credentials.
type Service struct {
	provider     Provider
	businessName string
}

func NewService(provider Provider, businessName string) *Service {
	return &Service{provider: provider, businessName: businessName}
}

func (s *Service) send(msg Message) error {
	if s.provider == nil {
		log.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("email provider not configured, skipping send")
		return nil
	}
	if err := s.provider.Send(msg); err != nil {
		return err
	}
	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Str("provider", s.provider.Name()).Msg("email sent")
	return nil
}

func (s *Service) SendInvoicePosted(invoice *models.CustomerInvoice, customer *models.Contact) error {
	dueLine := ""
	if invoice.DueDate != nil {
		dueLine = fmt.Sprintf("<p>Payment is due by <strong>%s</strong>.</p>", invoice.DueDate.Format("02 Jan 2006"))
	}
	body := fmt.Sprintf(`
		<h2>Invoice %s</h2>
		<p>Dear %s,</p>
		<p>A new invoice has been issued to you by %s.</p>
		<p>Amount due: <strong>%s</strong></p>
		%s
		<p>Thank you for your business.</p>`,
		invoice.InvoiceNumber, customer.Name, s.businessName, invoice.AmountDue.StringFixed(2), dueLine)

	return s.send(Message{
		To:       customer.Email,
		ToName:   customer.Name,
		Subject:  fmt.Sprintf("Invoice %s from %s", invoice.InvoiceNumber, s.businessName),
		HTMLBody: body,
	})
}

func (s *Service) SendPaymentConfirmation(payment *models.Payment, contact *models.Contact, invoiceNumber string) error {
	invoiceLine := ""
	if invoiceNumber != "" {
		invoiceLine = fmt.Sprintf("<p>Applied to invoice <strong>%s</strong>.</p>", invoiceNumber)
	}
	body := fmt.Sprintf(`
		<h2>Payment received</h2>
		<p>Dear %s,</p>
		<p>We have received your payment <strong>%s</strong> of <strong>%s</strong>.</p>
		%s
		<p>Thank you.</p>`,
		contact.Name, payment.PaymentNumber, payment.Amount.StringFixed(2), invoiceLine)

	return s.send(Message{
		To:       contact.Email,
		ToName:   contact.Name,
		Subject:  fmt.Sprintf("Payment %s received", payment.PaymentNumber),
		HTMLBody: body,
	})
}

func (s *Service) SendWelcome(email, name string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to %s</h2>
		<p>Hi %s,</p>
		<p>Your portal account has been created. You can now sign in to view
		your invoices, orders and payments.</p>`,
		s.businessName, name)

	return s.send(Message{
		To:       email,
		ToName:   name,
		Subject:  fmt.Sprintf("Welcome to %s", s.businessName),
		HTMLBody: body,
	})
}

func (s *Service) SendPasswordReset(email, name, token string) error {
	body := fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>Hi %s,</p>
		<p>Use the token below to reset your password. It expires in one hour.</p>
		<p><code>%s</code></p>
		<p>If you did not request this, ignore this email.</p>`,
		name, token)

	return s.send(Message{
		To:       email,
		ToName:   name,
		Subject:  fmt.Sprintf("%s password reset", s.businessName),
		HTMLBody: body,
	})
}

// SendDailySummary is the scheduler's end-of-day digest for admins.
func (s *Service) SendDailySummary(to string, summary *models.DashboardSummary) error {
	body := fmt.Sprintf(`
		<h2>Daily summary</h2>
		<ul>
			<li>Sales this month: %s</li>
			<li>Purchases this month: %s</li>
			<li>Outstanding receivable: %s</li>
			<li>Outstanding payable: %s</li>
			<li>Open invoices: %d, open bills: %d</li>
			<li>Budgets on track: %d, over budget: %d</li>
		</ul>`,
		summary.MonthSales.StringFixed(2),
		summary.MonthPurchases.StringFixed(2),
		summary.TotalReceivable.StringFixed(2),
		summary.TotalPayable.StringFixed(2),
		summary.PendingInvoices, summary.PendingBills,
		summary.BudgetsOnTrack, summary.BudgetsOver)

	return s.send(Message{
		To:       to,
		Subject:  fmt.Sprintf("%s daily summary", s.businessName),
		HTMLBody: body,
	})
}

// SendOverdueAlert tells an admin how many invoices are past due.
func (s *Service) SendOverdueAlert(to string, count int, totalDue string) error {
	body := fmt.Sprintf(`
		<h2>Overdue invoices</h2>
		<p><strong>%d</strong> invoices are past due, totalling <strong>%s</strong>.</p>
		<p>Review the receivables aging report for details.</p>`,
		count, totalDue)

	return s.send(Message{
		To:       to,
		Subject:  fmt.Sprintf("%s: %d overdue invoices", s.businessName, count),
		HTMLBody: body,
	})
}
