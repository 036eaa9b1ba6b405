package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/ordermerge/src/models"
)

func sampleRow() models.RawRow {
	return models.RawRow{
		models.ColOrderID:       "A001",
		models.ColRecipientName: "张三",
		models.ColPhone:         "123-456 (789):00",
		models.ColCountry:       "US",
		models.ColAddress:       "1 Main St",
		models.ColProductInfo:   "【1】Phone Case\n属性：BOX、Black、中国\n产品编号：ABC123\n【2】Charger\n合计 $12.50",
		models.ColProductTotal:  "1,250.00",
		models.ColOrderTotal:    "999.00",
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestRowProcessorExpandMode(t *testing.T) {
	p := NewRowProcessor(ModeExpandProducts, nil, nil)

	t.Run("Should emit one record per parsed product", func(t *testing.T) {
		records := p.Process(sampleRow(), "a.xls")
		require.Len(t, records, 2)

		assert.Equal(t, "Phone Case (BOX、Black)", records[0].ProductName)
		assert.Equal(t, "【1】", records[0].ProductSequence)
		assert.Equal(t, "Charger", records[1].ProductName)
		assert.Equal(t, "【2】", records[1].ProductSequence)

		// Shared fields are identical across the expansion.
		for _, record := range records {
			assert.Equal(t, "A001", record.OrderID)
			assert.Equal(t, "+12345678900", record.Phone)
			assert.Equal(t, 12.5, record.Price)
			assert.Equal(t, 1250.0, record.TotalAmount)
			assert.Equal(t, "a.xls", record.SourceFile)
		}
	})

	t.Run("Should fall back to the order total", func(t *testing.T) {
		row := sampleRow()
		delete(row, models.ColProductTotal)
		records := p.Process(row, "a.xls")
		require.NotEmpty(t, records)
		assert.Equal(t, 999.0, records[0].TotalAmount)
	})

	t.Run("Should default total to zero when both totals are unusable", func(t *testing.T) {
		row := sampleRow()
		row[models.ColProductTotal] = "N/A"
		delete(row, models.ColOrderTotal)
		records := p.Process(row, "a.xls")
		require.NotEmpty(t, records)
		assert.Equal(t, 0.0, records[0].TotalAmount)
	})

	t.Run("Should emit a single bare record when no products parse", func(t *testing.T) {
		row := sampleRow()
		row[models.ColProductInfo] = "只有价格 $3.00"
		records := p.Process(row, "a.xls")
		require.Len(t, records, 1)
		assert.Empty(t, records[0].ProductName)
		assert.Empty(t, records[0].ProductSequence)
		assert.Equal(t, 3.0, records[0].Price)
	})

	t.Run("Should tolerate a missing product-info column", func(t *testing.T) {
		row := sampleRow()
		delete(row, models.ColProductInfo)
		records := p.Process(row, "a.xls")
		require.Len(t, records, 1)
		assert.Equal(t, 0.0, records[0].Price)
	})

	t.Run("Should skip rows missing a required column", func(t *testing.T) {
		row := sampleRow()
		delete(row, models.ColPhone)
		assert.Empty(t, p.Process(row, "a.xls"))
	})
}

func TestRowProcessorPriceFilter(t *testing.T) {
	row := sampleRow()
	row[models.ColProductInfo] = "【1】Widget\n价格 $3.00"

	t.Run("Should skip rows below the minimum", func(t *testing.T) {
		p := NewRowProcessor(ModeExpandProducts, floatPtr(5.0), nil)
		assert.Empty(t, p.Process(row, "a.xls"))
	})

	t.Run("Should keep rows when no bound is set", func(t *testing.T) {
		p := NewRowProcessor(ModeExpandProducts, nil, nil)
		assert.NotEmpty(t, p.Process(row, "a.xls"))
	})

	t.Run("Should skip rows above the maximum", func(t *testing.T) {
		p := NewRowProcessor(ModeExpandProducts, nil, floatPtr(2.0))
		assert.Empty(t, p.Process(row, "a.xls"))
	})

	t.Run("Should keep rows inside the bounds", func(t *testing.T) {
		p := NewRowProcessor(ModeExpandProducts, floatPtr(1.0), floatPtr(5.0))
		assert.NotEmpty(t, p.Process(row, "a.xls"))
	})
}

func TestRowProcessorFlatMode(t *testing.T) {
	p := NewRowProcessor(ModePerRow, nil, nil)

	t.Run("Should emit exactly one record without product breakdown", func(t *testing.T) {
		records := p.Process(sampleRow(), "a.xls")
		require.Len(t, records, 1)
		assert.Empty(t, records[0].ProductName)
		assert.Empty(t, records[0].ProductSequence)
		assert.Equal(t, 0.0, records[0].TotalAmount)
		assert.Equal(t, 12.5, records[0].Price)
		assert.Equal(t, "+12345678900", records[0].Phone)
	})
}

func TestNewRowProcessorDefaultsMode(t *testing.T) {
	p := NewRowProcessor("bogus", nil, nil)
	records := p.Process(sampleRow(), "a.xls")
	// Unknown modes fall back to product expansion.
	assert.Len(t, records, 2)
}
