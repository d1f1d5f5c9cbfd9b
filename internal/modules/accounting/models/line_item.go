package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// LineItem is one priced row on a purchase order, sales order, vendor bill
// or customer invoice. Product name, SKU and unit are snapshotted at pricing
// time so later product edits never change a document retroactively.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
}

// LineItemRequest is the caller-supplied shape of an item. Quantity defaults
// to 1; unit price, tax rate and unit fall back to the product when omitted.
type LineItemRequest struct {
	ProductID   string           `json:"product_id"`
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Unit        string           `json:"unit"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
}

// Compute fills the derived amounts from quantity, unit price and tax rate,
// rounding each to 2 decimal places.
func (li *LineItem) Compute() {
	li.Subtotal = li.Quantity.Mul(li.UnitPrice).Round(2)
	li.TaxAmount = li.Subtotal.Mul(li.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	li.Total = li.Subtotal.Add(li.TaxAmount)
}

// DocumentTotals is the footer of a document: sums over its line items with
// an optional document-level discount applied after tax.
type DocumentTotals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeTotals sums the (already computed) line items and subtracts the
// discount from the grand total.
func ComputeTotals(items []LineItem, discount decimal.Decimal) DocumentTotals {
	var t DocumentTotals
	t.Subtotal = decimal.Zero
	t.TaxAmount = decimal.Zero
	for _, li := range items {
		t.Subtotal = t.Subtotal.Add(li.Subtotal)
		t.TaxAmount = t.TaxAmount.Add(li.TaxAmount)
	}
	t.TotalAmount = t.Subtotal.Add(t.TaxAmount).Sub(discount)
	return t
}

// MarshalItems encodes line items for the JSONB column on documents.
func MarshalItems(items []LineItem) (datatypes.JSON, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// UnmarshalItems decodes the JSONB column back into line items.
func UnmarshalItems(raw datatypes.JSON) ([]LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
