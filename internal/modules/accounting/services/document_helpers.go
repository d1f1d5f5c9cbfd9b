package services

import (
	"encoding/json"
	"fmt"

	"github.com/bizledger/bizledger-be/internal/core/export"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"gorm.io/datatypes"
)

// exportLines converts stored line items into printable rows.
func exportLines(items []models.LineItem) []export.DocumentLine {
	lines := make([]export.DocumentLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, export.DocumentLine{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
			TaxRate:   item.TaxRate,
			Total:     item.Total,
		})
	}
	return lines
}

// addressLines flattens a stored JSONB address into printable lines.
func addressLines(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var addr models.Address
	if err := json.Unmarshal(raw, &addr); err != nil {
		return nil
	}
	var lines []string
	if addr.Line1 != "" {
		lines = append(lines, addr.Line1)
	}
	if addr.Line2 != "" {
		lines = append(lines, addr.Line2)
	}
	cityLine := addr.City
	if addr.State != "" {
		if cityLine != "" {
			cityLine += ", "
		}
		cityLine += addr.State
	}
	if addr.PostalCode != "" {
		if cityLine != "" {
			cityLine += " "
		}
		cityLine += addr.PostalCode
	}
	if cityLine != "" {
		lines = append(lines, cityLine)
	}
	if addr.Country != "" {
		lines = append(lines, addr.Country)
	}
	return lines
}

// pdfKey builds the storage key for a rendered document.
func pdfKey(folder, number string) string {
	return fmt.Sprintf("%s/%s.pdf", folder, number)
}
