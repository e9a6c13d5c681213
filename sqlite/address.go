package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/pacchoferes/dispatch"
)

// Compile-time interface verification.
var _ dispatch.AddressService = (*AddressService)(nil)

// AddressService implements dispatch.AddressService using SQLite.
type AddressService struct {
	db *DB
}

// NewAddressService creates a new AddressService.
func NewAddressService(db *DB) *AddressService {
	return &AddressService{db: db}
}

// CreateAddress creates a new address.
func (s *AddressService) CreateAddress(ctx context.Context, address *dispatch.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	address.Address = strings.TrimSpace(address.Address)
	createdAt := time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO addresses (address, driver, created_at)
		VALUES (?, ?, ?)
	`, address.Address, address.Driver, formatTime(createdAt))
	if err != nil {
		return storeError(err, "failed to create address")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return dispatch.Abortf(err, "failed to create address")
	}

	address.ID = id
	address.CreatedAt = createdAt
	return nil
}

// FindAddresses retrieves addresses matching the filter, oldest first.
//
// Fragment matching lower-cases both sides in Go rather than in SQL, since
// SQLite's lower() only folds ASCII. Every row is scanned.
func (s *AddressService) FindAddresses(ctx context.Context, filter dispatch.AddressFilter) ([]*dispatch.Address, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, address, driver, created_at FROM addresses WHERE 1=1")

	if filter.Driver != nil {
		query.WriteString(" AND driver = ?")
		args = append(args, *filter.Driver)
	}

	query.WriteString(" ORDER BY id ASC")

	if filter.Fragment == nil {
		appendPagination(&query, &args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, dispatch.Abortf(err, "failed to list addresses")
	}
	defer rows.Close()

	var addresses []*dispatch.Address
	for rows.Next() {
		var address dispatch.Address
		var createdAt string

		if err := rows.Scan(&address.ID, &address.Address, &address.Driver, &createdAt); err != nil {
			return nil, dispatch.Abortf(err, "failed to list addresses")
		}

		if filter.Fragment != nil && !dispatch.MatchFragment(address.Address, *filter.Fragment) {
			continue
		}

		if address.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, dispatch.Abortf(err, "failed to list addresses")
		}

		addresses = append(addresses, &address)
	}
	if err := rows.Err(); err != nil {
		return nil, dispatch.Abortf(err, "failed to list addresses")
	}

	if filter.Fragment != nil {
		addresses = paginate(addresses, filter.Limit, filter.Offset)
	}

	return addresses, nil
}

// DeleteAddresses removes all addresses.
func (s *AddressService) DeleteAddresses(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM addresses"); err != nil {
		return dispatch.Abortf(err, "failed to clear addresses")
	}
	return nil
}
