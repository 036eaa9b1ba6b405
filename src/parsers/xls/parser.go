package xls

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	xlsreader "github.com/shakinm/xlsReader/xls"
	"github.com/username/ordermerge/src/models"
)

// XLSParser reads legacy BIFF workbooks, the format the order exports
// actually arrive in. First sheet only, header row first.
type XLSParser struct{}

func NewParser() *XLSParser {
	return &XLSParser{}
}

func (p *XLSParser) Parse(file io.Reader) ([]models.RawRow, error) {
	// The BIFF reader needs random access; buffer the whole file.
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read xls file: %w", err)
	}

	workbook, err := xlsreader.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("workbook has no sheets: %w", err)
	}

	numRows := sheet.GetNumberRows()
	if numRows == 0 {
		return nil, nil
	}

	header := rowStrings(sheet, 0)
	var rawRows []models.RawRow
	for i := 1; i < numRows; i++ {
		cells := rowStrings(sheet, i)
		if cells == nil {
			continue
		}
		row := make(models.RawRow, len(header))
		empty := true
		for j, name := range header {
			if name == "" {
				continue
			}
			var value string
			if j < len(cells) {
				value = cells[j]
			}
			if value != "" {
				empty = false
			}
			row[name] = value
		}
		if empty {
			continue
		}
		rawRows = append(rawRows, row)
	}
	return rawRows, nil
}

func rowStrings(sheet *xlsreader.Sheet, index int) []string {
	row, err := sheet.GetRow(index)
	if err != nil {
		return nil
	}
	cols := row.GetCols()
	values := make([]string, len(cols))
	for i, col := range cols {
		values[i] = strings.TrimSpace(col.GetString())
	}
	return values
}
