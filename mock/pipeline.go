package mock

import (
	"context"

	"github.com/pacchoferes/dispatch"
)

var _ dispatch.Importer = (*Importer)(nil)

// Importer is a mock implementation of dispatch.Importer.
type Importer struct {
	ImportFn func(ctx context.Context, text string) (*dispatch.ImportSummary, error)
}

func (i *Importer) Import(ctx context.Context, text string) (*dispatch.ImportSummary, error) {
	return i.ImportFn(ctx, text)
}

var _ dispatch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of dispatch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]*dispatch.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]*dispatch.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
