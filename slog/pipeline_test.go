package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/pacchoferes/dispatch"
	"github.com/pacchoferes/dispatch/mock"
	dispatchslog "github.com/pacchoferes/dispatch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("logs summary counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(_ context.Context, _ string) (*dispatch.ImportSummary, error) {
				return &dispatch.ImportSummary{ID: "run-1", Checksum: "abc", DriversCreated: 2, AddressesCreated: 5}, nil
			},
		}

		imp := dispatchslog.NewLoggingImporter(inner, logger)
		summary, err := imp.Import(context.Background(), "Juan\nCalle 1")

		require.NoError(t, err)
		assert.Equal(t, 2, summary.DriversCreated)
		output := buf.String()
		assert.Contains(t, output, "import_id=run-1")
		assert.Contains(t, output, "drivers_created=2")
		assert.Contains(t, output, "addresses_created=5")
		assert.Contains(t, output, "bytes=12")
	})

	t.Run("logs partial summary with error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(_ context.Context, _ string) (*dispatch.ImportSummary, error) {
				return &dispatch.ImportSummary{DriversCreated: 1}, errors.New("disk full")
			},
		}

		imp := dispatchslog.NewLoggingImporter(inner, logger)
		_, err := imp.Import(context.Background(), "Juan\nCalle 1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "drivers_created=1")
		assert.Contains(t, output, "err=\"disk full\"")
	})
}

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Searcher{
		SearchFn: func(_ context.Context, _ string) ([]*dispatch.SearchResult, error) {
			return []*dispatch.SearchResult{
				{Query: "mitre", Address: &dispatch.Address{Address: "Mitre 5"}},
				{Query: "rivadavia"},
			}, nil
		},
	}

	s := dispatchslog.NewLoggingSearcher(inner, logger)
	results, err := s.Search(context.Background(), "mitre y rivadavia")

	require.NoError(t, err)
	assert.Len(t, results, 2)
	output := buf.String()
	assert.Contains(t, output, "rows=2")
	assert.Contains(t, output, "matched=1")
}
