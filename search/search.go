// Package search resolves spoken or typed address fragments to drivers.
package search

import (
	"context"
	"strings"

	"github.com/pacchoferes/dispatch"
)

// Ensure Searcher implements dispatch.Searcher at compile time.
var _ dispatch.Searcher = (*Searcher)(nil)

// Searcher splits a query into fragments and looks each one up.
type Searcher struct {
	Addresses dispatch.AddressService
}

// Search returns one row per matching address for every fragment of query,
// or a single unmatched row for a fragment with no matches. Rows follow the
// order of the fragments in the query.
func (s *Searcher) Search(ctx context.Context, query string) ([]*dispatch.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, dispatch.Errorf(dispatch.EINVALID, "search text required")
	}

	var results []*dispatch.SearchResult
	for _, fragment := range dispatch.SplitQuery(query) {
		matches, err := s.Addresses.FindAddresses(ctx, dispatch.AddressFilter{Fragment: &fragment})
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			results = append(results, &dispatch.SearchResult{Query: fragment})
			continue
		}
		for _, m := range matches {
			results = append(results, &dispatch.SearchResult{Query: fragment, Address: m})
		}
	}

	return results, nil
}
