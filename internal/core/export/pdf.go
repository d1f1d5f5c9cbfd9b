// Package export renders accounting documents to PDF and reports to Excel.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// DocumentLine is one printable row of a document table.
type DocumentLine struct {
	Name      string
	Quantity  decimal.Decimal
	Unit      string
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
	Total     decimal.Decimal
}

// DocumentData is everything the PDF layout needs, independent of which
// document type it came from.
type DocumentData struct {
	Title      string
	Number     string
	Date       time.Time
	DueDate    *time.Time
	PartyLabel string
	PartyName  string
	PartyLines []string

	Lines []DocumentLine

	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	AmountPaid     *decimal.Decimal
	AmountDue      *decimal.Decimal

	Notes        string
	BusinessName string

	// QRPNG, when set, is printed in the footer (UPI payment code).
	QRPNG []byte
}

// PDFRenderer draws documents with a simple single-page-first layout.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(doc DocumentData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, doc.BusinessName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, doc.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Number: %s", doc.Number), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", doc.Date.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	if doc.DueDate != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Due Date: %s", doc.DueDate.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Counterparty block
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", doc.PartyLabel, doc.PartyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range doc.PartyLines {
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(70, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 7, "Tax %", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, line := range doc.Lines {
		pdf.CellFormat(70, 7, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%s %s", line.Quantity.String(), line.Unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, line.TaxRate.StringFixed(1), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, line.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals block, right aligned
	writeTotal := func(label string, value decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(145, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, value.StringFixed(2), "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal", doc.Subtotal, false)
	writeTotal("Tax", doc.TaxAmount, false)
	if !doc.DiscountAmount.IsZero() {
		writeTotal("Discount", doc.DiscountAmount.Neg(), false)
	}
	writeTotal("Total", doc.TotalAmount, true)
	if doc.AmountPaid != nil {
		writeTotal("Paid", *doc.AmountPaid, false)
	}
	if doc.AmountDue != nil {
		writeTotal("Amount Due", *doc.AmountDue, true)
	}

	if doc.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, "Notes: "+doc.Notes, "", "L", false)
	}

	if len(doc.QRPNG) > 0 {
		pdf.Ln(6)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("payment-qr", opts, bytes.NewReader(doc.QRPNG))
		pdf.ImageOptions("payment-qr", pdf.GetX(), pdf.GetY(), 30, 30, true, opts, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(0, 5, "Scan to pay via UPI", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
