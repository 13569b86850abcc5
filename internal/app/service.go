package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"labelpress/labels"
)

// SourceFile is one uploaded spreadsheet, already read into memory by the
// file dialog.
type SourceFile struct {
	Name string
	Data []byte
}

// Service owns the clean record set for the window's lifetime. Processing is
// atomic: either a whole batch of files becomes the new record set, or the
// previous set is kept untouched.
type Service struct {
	mu      sync.RWMutex
	cfg     labels.Config
	records []labels.LabelRecord
	stats   labels.CleanStats

	logger *log.Logger
}

// NewService constructs a service around the given configuration.
func NewService(cfg labels.Config, logger *log.Logger) *Service {
	cfg.ApplyDefaults()
	return &Service{cfg: cfg, logger: logger}
}

// Config returns a copy of the current configuration.
func (s *Service) Config() labels.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// UpdateConfig replaces the configuration.
func (s *Service) UpdateConfig(cfg labels.Config) labels.Config {
	cfg.ApplyDefaults()
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return cfg
}

// Process parses every file, concatenates their rows in submission order and
// replaces the record set with the cleaned result.
func (s *Service) Process(files []SourceFile) (labels.CleanStats, error) {
	if len(files) == 0 {
		return labels.CleanStats{}, errors.New("no input files")
	}
	var rows []labels.Row
	for _, f := range files {
		parsed, err := labels.ParseRowData(f.Name, f.Data)
		if err != nil {
			return labels.CleanStats{}, fmt.Errorf("parse %s: %w", f.Name, err)
		}
		rows = append(rows, parsed...)
	}
	cfg := s.Config()
	records, stats := labels.CleanRows(rows, cfg.DefaultRecipient)

	s.mu.Lock()
	s.records = records
	s.stats = stats
	s.mu.Unlock()

	s.logf("processed %d rows: %d kept, %d rejected, %d duplicates",
		stats.Input, stats.Kept, stats.Rejected, stats.Duplicates)
	return stats, nil
}

// Records returns a copy of the current record set.
func (s *Service) Records() []labels.LabelRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]labels.LabelRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Stats returns the stats of the last processing run.
func (s *Service) Stats() labels.CleanStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Reset discards the loaded record set.
func (s *Service) Reset() {
	s.mu.Lock()
	s.records = nil
	s.stats = labels.CleanStats{}
	s.mu.Unlock()
	s.logf("record set cleared")
}

// Export writes the current record set as a PDF using the template selected
// by id, and returns the page count.
func (s *Service) Export(templateID string, w io.Writer) (int, error) {
	t, ok := labels.TemplateByID(templateID)
	if !ok {
		return 0, fmt.Errorf("unknown template %q", templateID)
	}
	records := s.Records()
	if len(records) == 0 {
		return 0, errors.New("no records loaded")
	}
	pages, err := labels.ExportPDF(records, t, w)
	if err != nil {
		return 0, fmt.Errorf("export pdf: %w", err)
	}
	s.logf("exported %d labels (%d pages)", len(records), pages)
	return pages, nil
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
