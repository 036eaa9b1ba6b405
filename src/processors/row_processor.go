package processors

import (
	"fmt"

	"github.com/username/ordermerge/src/logger"
	"github.com/username/ordermerge/src/models"
	"github.com/username/ordermerge/src/parsers"
	"github.com/username/ordermerge/src/utils"
)

// Pipeline modes. Expand is the intended behavior; flat reproduces the older
// one-record-per-row output shape.
const (
	ModeExpandProducts = "expand"
	ModePerRow         = "flat"
)

// RowProcessor turns one raw spreadsheet row into zero or more canonical
// order records: phone normalization, headline-price extraction and
// filtering, product-info expansion.
type RowProcessor struct {
	mode     string
	minPrice *float64
	maxPrice *float64
}

func NewRowProcessor(mode string, minPrice, maxPrice *float64) *RowProcessor {
	if mode != ModePerRow {
		mode = ModeExpandProducts
	}
	return &RowProcessor{mode: mode, minPrice: minPrice, maxPrice: maxPrice}
}

// Process converts a row into records. A row whose headline price falls
// outside the configured bounds is skipped entirely; a row missing a required
// column is skipped and logged. Neither aborts the file.
func (p *RowProcessor) Process(row models.RawRow, sourceFile string) []models.OrderRecord {
	infoText := row.GetDefault(models.ColProductInfo, "")
	price := parsers.ExtractPrice(infoText)
	if p.minPrice != nil && price < *p.minPrice {
		return nil
	}
	if p.maxPrice != nil && price > *p.maxPrice {
		return nil
	}

	base, err := p.baseRecord(row, sourceFile)
	if err != nil {
		logger.L.Warn("Skipping malformed row", "file", sourceFile, "error", err)
		return nil
	}
	base.Price = price

	if p.mode == ModePerRow {
		// Flat mode carries no product breakdown and no total amount.
		return []models.OrderRecord{base}
	}

	base.TotalAmount = totalAmount(row)
	products := parsers.ParseProductInfo(infoText)
	if len(products) == 0 {
		return []models.OrderRecord{base}
	}

	records := make([]models.OrderRecord, 0, len(products))
	for _, product := range products {
		record := base
		record.ProductName = product.Name
		record.ProductSequence = product.Sequence
		records = append(records, record)
	}
	return records
}

func (p *RowProcessor) baseRecord(row models.RawRow, sourceFile string) (models.OrderRecord, error) {
	var record models.OrderRecord
	for _, field := range []struct {
		col  string
		dest *string
	}{
		{models.ColOrderID, &record.OrderID},
		{models.ColRecipientName, &record.RecipientName},
		{models.ColPhone, &record.Phone},
		{models.ColCountry, &record.Country},
		{models.ColAddress, &record.Address},
	} {
		value, err := row.Get(field.col)
		if err != nil {
			return models.OrderRecord{}, fmt.Errorf("building record: %w", err)
		}
		*field.dest = value
	}
	record.Phone = utils.NormalizePhone(record.Phone)
	record.SourceFile = sourceFile
	return record, nil
}

// totalAmount prefers the product total over the order total, falling back to
// 0 when both are absent or unparseable.
func totalAmount(row models.RawRow) float64 {
	for _, col := range []string{models.ColProductTotal, models.ColOrderTotal} {
		value, ok := row[col]
		if !ok {
			continue
		}
		amount, err := utils.ParseAmount(value)
		if err != nil {
			logger.L.Debug("Unparseable amount cell", "column", col, "value", value)
			continue
		}
		return amount
	}
	return 0.0
}
