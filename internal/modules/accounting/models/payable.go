package models

import "github.com/shopspring/decimal"

// Payment status of a bill or invoice, derived from amounts only.
const (
	PaymentStatusNotPaid       = "not_paid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusPaid          = "paid"
)

// PaymentStatusFor derives the payment status from the amounts alone, so any
// sequence of applications and reversals that lands on the same amount_paid
// yields the same status.
func PaymentStatusFor(amountPaid, totalAmount decimal.Decimal) string {
	switch {
	case amountPaid.GreaterThanOrEqual(totalAmount):
		return PaymentStatusPaid
	case amountPaid.GreaterThan(decimal.Zero):
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusNotPaid
	}
}

// ApplyPayment adds amount to what is already paid and rederives the due
// amount and status.
func ApplyPayment(amountPaid, totalAmount, amount decimal.Decimal) (newPaid, newDue decimal.Decimal, status string) {
	newPaid = amountPaid.Add(amount)
	newDue = totalAmount.Sub(newPaid)
	return newPaid, newDue, PaymentStatusFor(newPaid, totalAmount)
}

// ReversePayment removes amount from what is paid, clamping at zero, and
// rederives the due amount and status.
func ReversePayment(amountPaid, totalAmount, amount decimal.Decimal) (newPaid, newDue decimal.Decimal, status string) {
	newPaid = amountPaid.Sub(amount)
	if newPaid.IsNegative() {
		newPaid = decimal.Zero
	}
	newDue = totalAmount.Sub(newPaid)
	return newPaid, newDue, PaymentStatusFor(newPaid, totalAmount)
}
