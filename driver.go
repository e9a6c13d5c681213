package dispatch

import (
	"context"
	"strings"
)

// DefaultDriverColor is used when a driver is created by hand without a color.
const DefaultDriverColor = "#0b5fff"

// Driver represents a person to whom addresses are assigned.
// Name is the unique storage key and is compared case-sensitively by the
// store; the import pipeline performs its own case-insensitive matching.
type Driver struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate returns an error if the driver contains invalid fields.
func (d *Driver) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return Errorf(EINVALID, "driver name required")
	}
	return nil
}

// DriverService represents a service for managing drivers.
type DriverService interface {
	// CreateDriver stores a new driver.
	// Returns ECONFLICT if a driver with exactly the same name exists.
	CreateDriver(ctx context.Context, driver *Driver) error

	// FindDrivers retrieves drivers matching the filter in insertion order.
	FindDrivers(ctx context.Context, filter DriverFilter) ([]*Driver, error)

	// DeleteDriver removes a driver by name. Addresses that reference the
	// driver are left untouched. Deleting a missing driver is not an error.
	DeleteDriver(ctx context.Context, name string) error

	// DeleteDrivers removes every driver. Addresses are left untouched.
	DeleteDrivers(ctx context.Context) error
}

// DriverFilter represents a filter for FindDrivers.
type DriverFilter struct {
	Name *string `json:"name"`
}

// FindDriverFold returns the first driver whose name matches name under
// Unicode case folding, or nil if none does.
func FindDriverFold(drivers []*Driver, name string) *Driver {
	for _, d := range drivers {
		if strings.EqualFold(d.Name, name) {
			return d
		}
	}
	return nil
}

// ColorGenerator produces display colors for drivers created automatically.
type ColorGenerator interface {
	// Color returns a CSS color token. Colors carry no uniqueness guarantee.
	Color() string
}
