package sqlite

import (
	"context"
	"strings"

	"github.com/pacchoferes/dispatch"
)

// Compile-time interface verification.
var _ dispatch.DriverService = (*DriverService)(nil)

// DriverService implements dispatch.DriverService using SQLite.
type DriverService struct {
	db *DB
}

// NewDriverService creates a new DriverService.
func NewDriverService(db *DB) *DriverService {
	return &DriverService{db: db}
}

// CreateDriver creates a new driver.
func (s *DriverService) CreateDriver(ctx context.Context, driver *dispatch.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	driver.Name = strings.TrimSpace(driver.Name)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drivers (name, color)
		VALUES (?, ?)
	`, driver.Name, driver.Color)
	if err != nil {
		return storeError(err, "driver %q already exists", driver.Name)
	}
	return nil
}

// FindDrivers retrieves drivers matching the filter in insertion order.
func (s *DriverService) FindDrivers(ctx context.Context, filter dispatch.DriverFilter) ([]*dispatch.Driver, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT name, color FROM drivers WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY rowid ASC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, dispatch.Abortf(err, "failed to list drivers")
	}
	defer rows.Close()

	var drivers []*dispatch.Driver
	for rows.Next() {
		var driver dispatch.Driver
		if err := rows.Scan(&driver.Name, &driver.Color); err != nil {
			return nil, dispatch.Abortf(err, "failed to list drivers")
		}
		drivers = append(drivers, &driver)
	}
	if err := rows.Err(); err != nil {
		return nil, dispatch.Abortf(err, "failed to list drivers")
	}

	return drivers, nil
}

// DeleteDriver removes a driver. Missing drivers are ignored.
func (s *DriverService) DeleteDriver(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM drivers WHERE name = ?", name); err != nil {
		return dispatch.Abortf(err, "failed to delete driver %q", name)
	}
	return nil
}

// DeleteDrivers removes all drivers.
func (s *DriverService) DeleteDrivers(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM drivers"); err != nil {
		return dispatch.Abortf(err, "failed to clear drivers")
	}
	return nil
}
