// Package payment abstracts online payment collection for the portal.
package payment

import "github.com/shopspring/decimal"

// Order is a gateway-side payment order the customer completes on the
// hosted checkout (or via the returned UPI details for the manual gateway).
type Order struct {
	GatewayOrderID string          `json:"gateway_order_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	KeyID          string          `json:"key_id,omitempty"`
	UPIUri         string          `json:"upi_uri,omitempty"`
}

// Gateway creates payment orders and verifies completion callbacks.
type Gateway interface {
	CreateOrder(amount decimal.Decimal, reference string) (*Order, error)
	// VerifyCallback authenticates a completion callback before any money
	// is recorded.
	VerifyCallback(gatewayOrderID, gatewayPaymentID, signature string) error
	Name() string
}
