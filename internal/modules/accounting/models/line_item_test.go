package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestLineItemCompute(t *testing.T) {
	li := LineItem{
		Quantity:  d("2"),
		UnitPrice: d("100"),
		TaxRate:   d("18"),
	}
	li.Compute()

	assert.True(t, li.Subtotal.Equal(d("200")), "subtotal %s", li.Subtotal)
	assert.True(t, li.TaxAmount.Equal(d("36")), "tax %s", li.TaxAmount)
	assert.True(t, li.Total.Equal(d("236")), "total %s", li.Total)
}

func TestLineItemComputeRounds(t *testing.T) {
	li := LineItem{
		Quantity:  d("3"),
		UnitPrice: d("33.333"),
		TaxRate:   d("18"),
	}
	li.Compute()

	assert.True(t, li.Subtotal.Equal(d("100.00")), "subtotal %s", li.Subtotal)
	assert.True(t, li.TaxAmount.Equal(d("18.00")), "tax %s", li.TaxAmount)
}

func TestComputeTotalsWithDiscount(t *testing.T) {
	items := []LineItem{
		{Quantity: d("2"), UnitPrice: d("100"), TaxRate: d("18")},
		{Quantity: d("1"), UnitPrice: d("50"), TaxRate: d("5")},
	}
	for i := range items {
		items[i].Compute()
	}

	totals := ComputeTotals(items, d("10"))

	assert.True(t, totals.Subtotal.Equal(d("250")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(d("38.50")), "tax %s", totals.TaxAmount)
	assert.True(t, totals.TotalAmount.Equal(d("278.50")), "total %s", totals.TotalAmount)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil, decimal.Zero)
	assert.True(t, totals.TotalAmount.IsZero())
}

func TestMarshalItemsRoundTrip(t *testing.T) {
	items := []LineItem{{ProductID: "p1", ProductName: "Widget", Quantity: d("2"), UnitPrice: d("100"), TaxRate: d("18")}}
	items[0].Compute()

	raw, err := MarshalItems(items)
	require.NoError(t, err)

	decoded, err := UnmarshalItems(raw)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "Widget", decoded[0].ProductName)
	assert.True(t, decoded[0].Total.Equal(d("236")))
}

func TestUnmarshalItemsEmpty(t *testing.T) {
	items, err := UnmarshalItems(nil)
	require.NoError(t, err)
	assert.Nil(t, items)
}
