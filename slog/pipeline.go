package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pacchoferes/dispatch"
)

// Ensure LoggingImporter implements dispatch.Importer.
var _ dispatch.Importer = (*LoggingImporter)(nil)

// LoggingImporter wraps an Importer with debug logging.
type LoggingImporter struct {
	next   dispatch.Importer
	logger *slog.Logger
}

// NewLoggingImporter creates a new LoggingImporter.
func NewLoggingImporter(next dispatch.Importer, logger *slog.Logger) *LoggingImporter {
	return &LoggingImporter{next: next, logger: logger}
}

// Import delegates to the wrapped importer and logs the summary. Partial
// summaries returned with an error are logged too.
func (i *LoggingImporter) Import(ctx context.Context, text string) (summary *dispatch.ImportSummary, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		}
		if summary != nil {
			attrs = append(attrs,
				"import_id", summary.ID,
				"checksum", summary.Checksum,
				"drivers_created", summary.DriversCreated,
				"addresses_created", summary.AddressesCreated,
			)
		}
		i.logger.Info("import", attrs...)
	}(time.Now())
	return i.next.Import(ctx, text)
}

// Ensure LoggingSearcher implements dispatch.Searcher.
var _ dispatch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   dispatch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next dispatch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs match counts.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (results []*dispatch.SearchResult, err error) {
	defer func(begin time.Time) {
		var matched int
		for _, r := range results {
			if r.Matched() {
				matched++
			}
		}
		s.logger.Info("search",
			"query", query,
			"rows", len(results),
			"matched", matched,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
