package parsers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/username/ordermerge/src/models"
)

// Markers of the product-info mini-grammar. A product block looks like:
//
//	【1】Phone Case
//	属性：BOX、Black、中国
//	产品编号：ABC123
const (
	entryOpen  = "【"
	entryClose = "】"
	attrMarker = "属性："
	codeMarker = "产品编号："

	// packagingKeyword identifies a packaging-status attribute token by
	// case-insensitive substring match.
	packagingKeyword = "box"
)

var priceRe = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)

// ExtractPrice returns the first dollar amount found in a product-info block,
// or 0.0 when there is none. Multiple amounts are never summed; only the
// first match counts.
func ExtractPrice(text string) float64 {
	m := priceRe.FindStringSubmatch(text)
	if m == nil {
		return 0.0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0.0
	}
	return value
}

// ParseProductInfo parses a free-text product-info block into structured
// product entries. It scans lines with a two-state machine: a 【n】 line closes
// the in-progress entry and opens a new one; attribute and code lines attach
// to the current entry; anything else is ignored.
func ParseProductInfo(text string) []models.ProductEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var entries []models.ProductEntry
	var current *models.ProductEntry

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, entryOpen) && strings.Contains(line, entryClose):
			if current != nil {
				entries = append(entries, *current)
			}
			idx := strings.Index(line, entryClose)
			current = &models.ProductEntry{
				Sequence: line[:idx+len(entryClose)],
				Name:     strings.TrimSpace(line[idx+len(entryClose):]),
			}
		case current != nil && strings.Contains(line, attrMarker):
			current.Attributes = filterAttributes(afterMarker(line, attrMarker))
		case current != nil && strings.Contains(line, codeMarker):
			current.Code = strings.TrimSpace(afterMarker(line, codeMarker))
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}

	// Fold the surviving attributes into the display name.
	for i := range entries {
		if len(entries[i].Attributes) > 0 {
			entries[i].Name = fmt.Sprintf("%s (%s)", entries[i].Name, strings.Join(entries[i].Attributes, "、"))
		}
	}
	return entries
}

func afterMarker(line, marker string) string {
	return line[strings.Index(line, marker)+len(marker):]
}

// filterAttributes splits an attribute list on 、, drops empty tokens and the
// origin token, and keeps at most one packaging-status token and one color
// token, packaging first. When several color-like tokens appear only the
// first is kept; the source data never distinguishes further.
func filterAttributes(raw string) []string {
	var packaging, color string
	for _, tok := range strings.Split(raw, "、") {
		tok = strings.TrimSpace(tok)
		if tok == "" || isOriginToken(tok) {
			continue
		}
		if strings.Contains(strings.ToLower(tok), packagingKeyword) {
			if packaging == "" {
				packaging = tok
			}
			continue
		}
		if color == "" {
			color = tok
		}
	}

	var attrs []string
	if packaging != "" {
		attrs = append(attrs, packaging)
	}
	if color != "" {
		attrs = append(attrs, color)
	}
	return attrs
}

func isOriginToken(tok string) bool {
	return tok == "中国" || strings.EqualFold(tok, "china")
}
