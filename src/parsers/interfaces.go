package parsers

import (
	"io"

	"github.com/username/ordermerge/src/models"
)

// SheetParser reads a single-sheet spreadsheet into raw rows. The first sheet
// row is the header; every following row becomes one RawRow keyed by header
// name.
type SheetParser interface {
	Parse(file io.Reader) ([]models.RawRow, error)
}
