package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelSheet is one sheet of tabular report output.
type ExcelSheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// WriteExcel builds a workbook with one sheet per input, bold header row,
// auto-sized-ish columns.
func WriteExcel(sheets []ExcelSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, sheet := range sheets {
		name := sheet.Name
		if i == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
			}
		}

		for col, header := range sheet.Headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(name, cell, header); err != nil {
				return nil, err
			}
		}
		if len(sheet.Headers) > 0 {
			last, _ := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
			_ = f.SetCellStyle(name, "A1", last, headerStyle)
		}

		for rowIdx, row := range sheet.Rows {
			for col, value := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err := f.SetCellValue(name, cell, value); err != nil {
					return nil, err
				}
			}
		}

		// Widen columns a bit past the default.
		if len(sheet.Headers) > 0 {
			lastCol, _ := excelize.ColumnNumberToName(len(sheet.Headers))
			_ = f.SetColWidth(name, "A", lastCol, 18)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
