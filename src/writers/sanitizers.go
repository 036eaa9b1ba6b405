package writers

import (
	"strings"
	"unicode"
)

// sanitizeCell prepends a single quote when a cell value starts with a formula
// character, so spreadsheet software treats untrusted source text as text.
func sanitizeCell(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > 0 {
		switch rune(trimmed[0]) {
		case '=', '+', '@', '\t', '\r':
			return "'" + s
		}
	}
	return stripUnprintable(s)
}

// stripUnprintable removes non-printable characters, allowing common
// whitespace like tab and newline.
func stripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s)
}
