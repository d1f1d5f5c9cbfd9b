package services

import (
	"time"

	"github.com/bizledger/bizledger-be/internal/core/export"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/shopspring/decimal"
)

// Collaborator interfaces the accounting services depend on. Concrete
// implementations live in internal/core.

type NumberGenerator interface {
	Next(prefix string, at time.Time) (string, error)
}

type Mailer interface {
	SendInvoicePosted(invoice *models.CustomerInvoice, customer *models.Contact) error
	SendPaymentConfirmation(payment *models.Payment, contact *models.Contact, invoiceNumber string) error
}

type Notifier interface {
	NotifyAdmins(title, message, category string) error
}

type DocumentRenderer interface {
	Render(doc export.DocumentData) ([]byte, error)
}

type FileStore interface {
	Upload(key string, data []byte, contentType string) (string, error)
}

// PortalUserRemover detaches portal logins when their contact goes away.
type PortalUserRemover interface {
	DeleteByContactID(contactID string) error
}

// PaymentQRProvider supplies a UPI QR image for an outstanding amount.
type PaymentQRProvider interface {
	PaymentQR(amount decimal.Decimal, reference string) ([]byte, error)
}
