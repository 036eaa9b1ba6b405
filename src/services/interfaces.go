package services

import (
	"errors"

	"github.com/username/ordermerge/src/models"
)

var (
	// ErrNoInputFiles means discovery found zero candidate spreadsheets.
	ErrNoInputFiles = errors.New("no input spreadsheet files found")
	// ErrNoRecords means no file produced any usable records.
	ErrNoRecords = errors.New("no usable records in any input file")
	// ErrWriteReport wraps a failure while writing the final report; fatal to
	// the run, no partial or retried writes.
	ErrWriteReport = errors.New("failed to write consolidated report")
)

// RunResult aggregates everything a run produced, for reporting.
type RunResult struct {
	FilesFound   int
	FilesParsed  int
	TotalRecords int
	FinalRecords int
	Summary      models.Summary
	OutputPath   string
}

// PipelineService drives one full consolidation run over a directory tree.
type PipelineService interface {
	Run(root string) (*RunResult, error)
}
