package services

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/username/ordermerge/src/logger"
	"github.com/username/ordermerge/src/models"
	"github.com/username/ordermerge/src/parsers"
	"github.com/username/ordermerge/src/processors"
	"github.com/username/ordermerge/src/writers"
)

// PipelineOptions carries the discovery settings so runs are deterministic
// and testable without process-wide state.
type PipelineOptions struct {
	// OutputPrefix excludes prior run outputs from rediscovery.
	OutputPrefix string
	// InputExtensions are matched case-insensitively against file suffixes.
	InputExtensions []string
}

type pipelineServiceImpl struct {
	processor *processors.RowProcessor
	merger    *processors.Merger
	writer    writers.ReportWriter
	opts      PipelineOptions
}

func NewPipelineService(
	processor *processors.RowProcessor,
	merger *processors.Merger,
	writer writers.ReportWriter,
	opts PipelineOptions,
) PipelineService {
	if len(opts.InputExtensions) == 0 {
		opts.InputExtensions = []string{".xls"}
	}
	return &pipelineServiceImpl{
		processor: processor,
		merger:    merger,
		writer:    writer,
		opts:      opts,
	}
}

// Run executes one full consolidation pass. A bad row or bad file never
// aborts the run; only total absence of usable data or a failed final write
// terminates early.
func (s *pipelineServiceImpl) Run(root string) (*RunResult, error) {
	startTime := time.Now()
	logger.L.Info("Pipeline run START", "root", root)

	files, err := s.findInputFiles(root)
	if err != nil {
		return nil, fmt.Errorf("discovering input files under %s: %w", root, err)
	}
	if len(files) == 0 {
		return nil, ErrNoInputFiles
	}
	logger.L.Info("Found input files", "count", len(files))

	// Files are processed strictly sequentially; discovery order determines
	// which record wins a dedup tie.
	perFile := make([][]models.OrderRecord, 0, len(files))
	totalRecords := 0
	filesParsed := 0
	for _, path := range files {
		records := s.ingestFile(path)
		if len(records) > 0 {
			filesParsed++
		}
		totalRecords += len(records)
		perFile = append(perFile, records)
	}
	if totalRecords == 0 {
		return nil, ErrNoRecords
	}

	final := s.merger.Merge(perFile)
	summary := processors.Summarize(final)

	outputPath, err := s.writer.Write(final)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteReport, err)
	}

	logger.L.Info("Pipeline run END",
		"duration", time.Since(startTime),
		"files", len(files),
		"totalRecords", totalRecords,
		"finalRecords", len(final),
		"output", outputPath)

	return &RunResult{
		FilesFound:   len(files),
		FilesParsed:  filesParsed,
		TotalRecords: totalRecords,
		FinalRecords: len(final),
		Summary:      summary,
		OutputPath:   outputPath,
	}, nil
}

// findInputFiles walks root recursively and keeps files with a configured
// spreadsheet extension whose name does not start with the output prefix.
func (s *pipelineServiceImpl) findInputFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.L.Warn("Skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, s.opts.OutputPrefix) {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(name))
		for _, want := range s.opts.InputExtensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ingestFile reads one spreadsheet and processes every row in order. Any
// failure is logged and yields an empty contribution; the run continues.
func (s *pipelineServiceImpl) ingestFile(path string) []models.OrderRecord {
	logger.L.Info("Processing file", "path", path)

	parser, err := parsers.GetParser(filepath.Ext(path))
	if err != nil {
		logger.L.Error("Skipping file with unsupported format", "path", path, "error", err)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		logger.L.Error("Skipping unreadable file", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		logger.L.Error("Skipping unparseable file", "path", path, "error", err)
		return nil
	}

	source := filepath.Base(path)
	var records []models.OrderRecord
	for _, row := range rows {
		for _, record := range s.processor.Process(row, source) {
			logger.L.Debug("Processed order",
				"orderID", record.OrderID,
				"recipient", record.RecipientName,
				"phone", record.Phone,
				"country", record.Country)
			records = append(records, record)
		}
	}
	logger.L.Info("File processed", "path", path, "records", len(records))
	return records
}
