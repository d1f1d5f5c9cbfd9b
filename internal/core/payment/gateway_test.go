package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayVerifyCallback(t *testing.T) {
	g := NewRazorpayGateway("key_test", "secret_test")

	err := g.VerifyCallback("order_1", "pay_1", sign("secret_test", "order_1", "pay_1"))
	assert.NoError(t, err)

	err = g.VerifyCallback("order_1", "pay_1", sign("wrong_secret", "order_1", "pay_1"))
	assert.Error(t, err)

	err = g.VerifyCallback("order_1", "pay_2", sign("secret_test", "order_1", "pay_1"))
	assert.Error(t, err, "signature bound to the payment id")
}

func TestManualGatewayOrder(t *testing.T) {
	g := NewManualGateway("shop@upi", "Bizledger Traders")

	order, err := g.CreateOrder(decimal.NewFromInt(1500), "INV-202608-0007")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.GatewayOrderID, "manual_"))
	assert.Equal(t, "INR", order.Currency)
	assert.Contains(t, order.UPIUri, "pa=shop%40upi")
	assert.Contains(t, order.UPIUri, "am=1500.00")
	assert.Contains(t, order.UPIUri, "tn=INV-202608-0007")
}

func TestManualGatewayRejectsCallbacks(t *testing.T) {
	g := NewManualGateway("shop@upi", "Bizledger Traders")
	assert.Error(t, g.VerifyCallback("order", "pay", "sig"))
}

func TestManualGatewayPaymentQR(t *testing.T) {
	g := NewManualGateway("shop@upi", "Bizledger Traders")

	png, err := g.PaymentQR(decimal.NewFromInt(100), "INV-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
