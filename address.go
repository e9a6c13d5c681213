package dispatch

import (
	"context"
	"strings"
	"time"
)

// Address represents a free-text location assigned to a driver.
//
// Driver holds a copy of the driver's name rather than a reference to the
// driver record. It may name a driver that was deleted afterwards, or be
// empty when the address was never assigned.
type Address struct {
	ID        int64     `json:"id"`
	Address   string    `json:"address"`
	Driver    string    `json:"driver"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the address contains invalid fields.
func (a *Address) Validate() error {
	if strings.TrimSpace(a.Address) == "" {
		return Errorf(EINVALID, "address required")
	}
	return nil
}

// AddressService represents a service for managing addresses.
type AddressService interface {
	// CreateAddress stores a new address, assigning its ID and CreatedAt.
	// The driver name is not checked against existing drivers.
	CreateAddress(ctx context.Context, address *Address) error

	// FindAddresses retrieves addresses matching the filter, oldest first.
	FindAddresses(ctx context.Context, filter AddressFilter) ([]*Address, error)

	// DeleteAddresses removes every address.
	DeleteAddresses(ctx context.Context) error
}

// AddressFilter represents a filter for FindAddresses.
type AddressFilter struct {
	Driver *string `json:"driver"`

	// Fragment restricts results to addresses containing the fragment,
	// ignoring case.
	Fragment *string `json:"fragment"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// MatchFragment reports whether text contains fragment, ignoring case.
func MatchFragment(text, fragment string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(fragment))
}
