package writers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/username/ordermerge/src/models"
	"github.com/xuri/excelize/v2"
)

// ReportWriter persists the final record set and returns the output path.
type ReportWriter interface {
	Write(records []models.OrderRecord) (string, error)
}

// reportColumns fixes the output column order and display widths.
var reportColumns = []struct {
	header string
	width  float64
}{
	{models.ColOrderID, 20},
	{models.ColRecipientName, 15},
	{models.ColPhone, 20},
	{models.ColCountry, 10},
	{models.ColAddress, 40},
	{models.ColPrice, 12},
	{models.ColTotalAmount, 12},
	{models.ColProductName, 30},
	{models.ColProductSeq, 10},
	{models.ColSourceFile, 20},
}

const timestampFormat = "20060102_150405"

// ExcelReportWriter writes the consolidated report as a single-sheet xlsx
// file named <prefix>_<timestamp>.xlsx with centered, fixed-width columns.
type ExcelReportWriter struct {
	OutputDir string
	Prefix    string
	SheetName string

	now func() time.Time
}

func NewExcelReportWriter(outputDir, prefix, sheetName string) *ExcelReportWriter {
	return &ExcelReportWriter{
		OutputDir: outputDir,
		Prefix:    prefix,
		SheetName: sheetName,
		now:       time.Now,
	}
}

func (w *ExcelReportWriter) Write(records []models.OrderRecord) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := w.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(reportColumns))
	for i, col := range reportColumns {
		header[i] = col.header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		// Free-text cells are sanitized against formula injection. The phone
		// is exempt: its leading "+" is part of the normalized format.
		row := []interface{}{
			sanitizeCell(record.OrderID),
			sanitizeCell(record.RecipientName),
			record.Phone,
			sanitizeCell(record.Country),
			sanitizeCell(record.Address),
			record.Price,
			record.TotalAmount,
			sanitizeCell(record.ProductName),
			record.ProductSequence,
			record.SourceFile,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write record row %d: %w", i+2, err)
		}
	}

	if err := w.applyLayout(f, sheet); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.xlsx", w.Prefix, w.now().Format(timestampFormat))
	path := filepath.Join(w.OutputDir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return path, nil
}

// applyLayout sets the fixed column widths and center alignment. Cosmetic
// only; record content is already final.
func (w *ExcelReportWriter) applyLayout(f *excelize.File, sheet string) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}
	for i, col := range reportColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return fmt.Errorf("failed to set width for column %s: %w", name, err)
		}
		if err := f.SetColStyle(sheet, name, styleID); err != nil {
			return fmt.Errorf("failed to set style for column %s: %w", name, err)
		}
	}
	return nil
}
