package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		paid  string
		total string
		want  string
	}{
		{"nothing paid", "0", "236", PaymentStatusNotPaid},
		{"partially paid", "100", "236", PaymentStatusPartiallyPaid},
		{"fully paid", "236", "236", PaymentStatusPaid},
		{"overpaid still paid", "300", "236", PaymentStatusPaid},
		{"zero total", "0", "0", PaymentStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentStatusFor(d(tt.paid), d(tt.total)))
		})
	}
}

func TestApplyPayment(t *testing.T) {
	paid, due, status := ApplyPayment(d("0"), d("236"), d("100"))
	assert.True(t, paid.Equal(d("100")))
	assert.True(t, due.Equal(d("136")))
	assert.Equal(t, PaymentStatusPartiallyPaid, status)

	paid, due, status = ApplyPayment(paid, d("236"), d("136"))
	assert.True(t, paid.Equal(d("236")))
	assert.True(t, due.IsZero())
	assert.Equal(t, PaymentStatusPaid, status)
}

func TestReversePaymentIsSymmetric(t *testing.T) {
	paid, _, _ := ApplyPayment(d("0"), d("236"), d("100"))
	paid, due, status := ReversePayment(paid, d("236"), d("100"))

	assert.True(t, paid.IsZero())
	assert.True(t, due.Equal(d("236")))
	assert.Equal(t, PaymentStatusNotPaid, status)
}

func TestReversePaymentClampsAtZero(t *testing.T) {
	paid, due, status := ReversePayment(d("50"), d("236"), d("100"))

	assert.True(t, paid.IsZero())
	assert.True(t, due.Equal(d("236")))
	assert.Equal(t, PaymentStatusNotPaid, status)
}
