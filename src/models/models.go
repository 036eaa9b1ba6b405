package models

import "fmt"

// Column names as they appear in the source export files. The input schema is
// fixed; these are not configurable at runtime.
const (
	ColOrderID       = "订单号"
	ColRecipientName = "收货人名称"
	ColPhone         = "联系电话"
	ColCountry       = "国家"
	ColAddress       = "收货地址"
	ColProductInfo   = "产品信息"
	ColProductTotal  = "产品总金额"
	ColOrderTotal    = "订单总金额"
)

// Output-only column headers.
const (
	ColPrice       = "价格"
	ColTotalAmount = "总金额"
	ColProductName = "产品名称"
	ColProductSeq  = "产品序号"
	ColSourceFile  = "来源文件"
)

// RawRow is one spreadsheet row keyed by header name. Cells arrive as strings
// straight from the sheet reader; fields may be missing or malformed.
type RawRow map[string]string

// Get returns the value for a required column, failing when the column is
// absent from the row.
func (r RawRow) Get(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("missing required column %q", key)
	}
	return v, nil
}

// GetDefault returns the value for an optional column, or def when absent.
func (r RawRow) GetDefault(key, def string) string {
	if v, ok := r[key]; ok {
		return v
	}
	return def
}

// ProductEntry is one parsed 【n】 block from a product-info cell.
type ProductEntry struct {
	Sequence   string   `json:"sequence"` // bracketed token verbatim, e.g. 【1】
	Name       string   `json:"name"`
	Attributes []string `json:"attributes,omitempty"` // at most packaging + color
	Code       string   `json:"code,omitempty"`       // 产品编号 when present
}

// OrderRecord is the canonical output unit. One input row yields one record
// per parsed product, all sharing the non-product fields.
type OrderRecord struct {
	OrderID         string  `json:"order_id"`
	RecipientName   string  `json:"recipient_name"`
	Phone           string  `json:"phone"` // normalized, dedup key
	Country         string  `json:"country"`
	Address         string  `json:"address"`
	Price           float64 `json:"price"` // headline price from product-info text
	TotalAmount     float64 `json:"total_amount"`
	ProductName     string  `json:"product_name"`
	ProductSequence string  `json:"product_sequence"`
	SourceFile      string  `json:"source_file"`
}

// Summary holds price statistics over the final record set.
type Summary struct {
	Count     int     `json:"count"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	MeanPrice float64 `json:"mean_price"`
}
