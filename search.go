package dispatch

import (
	"context"
	"regexp"
	"strings"
)

// SearchResult is one row of a search. A fragment with no matches yields a
// single row with a nil Address; a fragment matching several addresses
// yields one row per match.
type SearchResult struct {
	Query   string   `json:"query"`
	Address *Address `json:"address,omitempty"`
}

// Matched reports whether the row resolved to a stored address.
func (r *SearchResult) Matched() bool {
	return r.Address != nil
}

// Searcher resolves address fragments to assigned drivers.
type Searcher interface {
	Search(ctx context.Context, query string) ([]*SearchResult, error)
}

// querySeparator matches newlines, commas and the spoken connector " y ".
var querySeparator = regexp.MustCompile(`(?i)\n|,| y `)

// SplitQuery splits a raw query into trimmed, non-empty fragments in order.
func SplitQuery(query string) []string {
	var fragments []string
	for _, s := range querySeparator.Split(query, -1) {
		if s = strings.TrimSpace(s); s != "" {
			fragments = append(fragments, s)
		}
	}
	return fragments
}
