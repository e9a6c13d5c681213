package http

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/pacchoferes/dispatch"
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// nonNil returns an empty slice for nil so lists encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func joinStatic(dir, name string) string {
	return filepath.Join(dir, filepath.FromSlash(name))
}

// parseAddressFilter reads the driver, fragment, offset and limit query
// parameters of an address listing.
func parseAddressFilter(r *http.Request) (dispatch.AddressFilter, error) {
	var filter dispatch.AddressFilter
	q := r.URL.Query()

	if driver := q.Get("driver"); driver != "" {
		filter.Driver = &driver
	}
	if fragment := q.Get("fragment"); fragment != "" {
		filter.Fragment = &fragment
	}

	var err error
	if filter.Offset, err = parseCount(q.Get("offset"), "offset"); err != nil {
		return filter, err
	}
	if filter.Limit, err = parseCount(q.Get("limit"), "limit"); err != nil {
		return filter, err
	}
	return filter, nil
}

// parseCount parses an optional non-negative integer parameter.
func parseCount(value, name string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, dispatch.Errorf(dispatch.EINVALID, "%s must be a non-negative integer", name)
	}
	return n, nil
}
