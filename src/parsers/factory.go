package parsers

import (
	"fmt"
	"strings"

	"github.com/username/ordermerge/src/parsers/xls"
	"github.com/username/ordermerge/src/parsers/xlsx"
)

// GetParser returns the sheet parser for a file extension (with leading dot).
func GetParser(ext string) (SheetParser, error) {
	switch strings.ToLower(ext) {
	case ".xls":
		return xls.NewParser(), nil
	case ".xlsx":
		return xlsx.NewParser(), nil
	default:
		return nil, fmt.Errorf("no parser available for extension: %s", ext)
	}
}
