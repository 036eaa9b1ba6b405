package processors

import (
	"sort"

	"github.com/username/ordermerge/src/logger"
	"github.com/username/ordermerge/src/models"
	"github.com/username/ordermerge/src/utils"
)

// Fields the final record set can be sorted by, descending.
const (
	SortByPrice       = "price"
	SortByTotalAmount = "total_amount"
)

// Merger consolidates per-file record sets: concatenation in discovery order,
// deduplication by phone (last occurrence wins), then a stable descending
// sort on the configured amount field.
type Merger struct {
	sortField string
}

func NewMerger(sortField string) *Merger {
	if sortField != SortByTotalAmount {
		sortField = SortByPrice
	}
	return &Merger{sortField: sortField}
}

func (m *Merger) Merge(perFile [][]models.OrderRecord) []models.OrderRecord {
	var all []models.OrderRecord
	for _, records := range perFile {
		all = append(all, records...)
	}

	deduped := dedupeByPhone(all)
	if dropped := len(all) - len(deduped); dropped > 0 {
		logger.L.Info("Deduplicated records by phone", "before", len(all), "after", len(deduped), "dropped", dropped)
	}

	m.sortByAmount(deduped)
	return deduped
}

// dedupeByPhone keeps, for every phone key, the record appended last, with
// survivors ordered by the position of that last occurrence. Later files
// override earlier ones.
func dedupeByPhone(records []models.OrderRecord) []models.OrderRecord {
	lastIndex := make(map[string]int, len(records))
	for i, record := range records {
		lastIndex[record.Phone] = i
	}
	deduped := make([]models.OrderRecord, 0, len(lastIndex))
	for i, record := range records {
		if lastIndex[record.Phone] == i {
			deduped = append(deduped, record)
		}
	}
	return deduped
}

func (m *Merger) sortByAmount(records []models.OrderRecord) {
	amount := func(r models.OrderRecord) float64 {
		if m.sortField == SortByTotalAmount {
			return r.TotalAmount
		}
		return r.Price
	}
	// Stable so ties preserve the dedup order.
	sort.SliceStable(records, func(i, j int) bool {
		return amount(records[i]) > amount(records[j])
	})
}

// Summarize computes price statistics over the final record set.
func Summarize(records []models.OrderRecord) models.Summary {
	summary := models.Summary{Count: len(records)}
	if len(records) == 0 {
		return summary
	}
	summary.MinPrice = records[0].Price
	summary.MaxPrice = records[0].Price
	var sum float64
	for _, record := range records {
		if record.Price < summary.MinPrice {
			summary.MinPrice = record.Price
		}
		if record.Price > summary.MaxPrice {
			summary.MaxPrice = record.Price
		}
		sum += record.Price
	}
	summary.MeanPrice = utils.RoundFloat(sum/float64(len(records)), 2)
	return summary
}
