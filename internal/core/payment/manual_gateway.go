package payment

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// ManualGateway hands out UPI payment details instead of a hosted checkout.
// An operator records the payment once the transfer shows up.
type ManualGateway struct {
	vpa          string
	businessName string
}

func NewManualGateway(vpa, businessName string) *ManualGateway {
	return &ManualGateway{vpa: vpa, businessName: businessName}
}

func (g *ManualGateway) Name() string { return "manual" }

func (g *ManualGateway) upiURI(amount decimal.Decimal, reference string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&tn=%s&cu=INR",
		url.QueryEscape(g.vpa),
		url.QueryEscape(g.businessName),
		amount.StringFixed(2),
		url.QueryEscape(reference))
}

func (g *ManualGateway) CreateOrder(amount decimal.Decimal, reference string) (*Order, error) {
	return &Order{
		GatewayOrderID: "manual_" + uuid.New().String(),
		Amount:         amount,
		Currency:       "INR",
		UPIUri:         g.upiURI(amount, reference),
	}, nil
}

// VerifyCallback always fails: manual transfers have no gateway callback,
// payments get recorded by an operator.
func (g *ManualGateway) VerifyCallback(gatewayOrderID, gatewayPaymentID, signature string) error {
	return fmt.Errorf("manual gateway does not accept callbacks")
}

// PaymentQR renders the UPI URI as a QR PNG for embedding in invoices.
func (g *ManualGateway) PaymentQR(amount decimal.Decimal, reference string) ([]byte, error) {
	return qrcode.Encode(g.upiURI(amount, reference), qrcode.Medium, 256)
}
