// Package excel renders tabular report data to .xlsx workbooks.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Report"
	// maxColWidth caps content-derived column widths.
	maxColWidth = 50
)

// Table is an ordered set of columns plus row data. Ordering matters for
// the exported layout, which is why this is not a []map.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColWidth returns the display width for column i: the longest of the header
// and every cell in that column, capped at maxColWidth.
func (t Table) ColWidth(i int) float64 {
	w := len(t.Headers[i])
	for _, row := range t.Rows {
		if i < len(row) && len(row[i]) > w {
			w = len(row[i])
		}
	}
	if w > maxColWidth {
		w = maxColWidth
	}
	return float64(w)
}

// Write renders the table as an .xlsx workbook. An empty table produces a
// single-cell sheet so the download is never a corrupt file.
func Write(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if len(t.Headers) == 0 {
		if err := f.SetCellValue(sheetName, "A1", "No hay datos"); err != nil {
			return nil, fmt.Errorf("failed to write placeholder: %w", err)
		}
		return toBytes(f)
	}

	for i, header := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, t.ColWidth(i)); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for r, row := range t.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	return toBytes(f)
}

func toBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
