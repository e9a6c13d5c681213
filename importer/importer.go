// Package importer turns freeform text into drivers and addresses.
package importer

import (
	"context"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pacchoferes/dispatch"
)

// Ensure Importer implements dispatch.Importer at compile time.
var _ dispatch.Importer = (*Importer)(nil)

// Importer creates drivers and addresses from blocks of text.
//
// Blocks are processed one record at a time. A failure stops the import
// without undoing what was already stored.
type Importer struct {
	Drivers   dispatch.DriverService
	Addresses dispatch.AddressService
	Colors    dispatch.ColorGenerator
}

// Import parses text into blocks and stores them. Drivers are matched
// against existing drivers ignoring case; unmatched drivers are created with
// a generated color. Addresses are bound to the driver name as written in
// the block.
func (i *Importer) Import(ctx context.Context, text string) (*dispatch.ImportSummary, error) {
	if strings.TrimSpace(text) == "" {
		return nil, dispatch.Errorf(dispatch.EINVALID, "import text is empty")
	}

	summary := &dispatch.ImportSummary{
		ID:       uuid.New().String(),
		Checksum: Checksum(text),
	}

	for _, block := range dispatch.ParseBlocks(text) {
		name := strings.TrimSpace(block.Driver)
		if name == "" {
			continue
		}

		drivers, err := i.Drivers.FindDrivers(ctx, dispatch.DriverFilter{})
		if err != nil {
			return summary, err
		}

		if dispatch.FindDriverFold(drivers, name) == nil {
			driver := &dispatch.Driver{Name: name, Color: i.Colors.Color()}
			if err := i.Drivers.CreateDriver(ctx, driver); err != nil {
				return summary, err
			}
			summary.DriversCreated++
		}

		for _, line := range block.Addresses {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if err := i.Addresses.CreateAddress(ctx, &dispatch.Address{Address: line, Driver: name}); err != nil {
				return summary, err
			}
			summary.AddressesCreated++
		}
	}

	return summary, nil
}

// Checksum returns the xxHash64 of text as 16 hex digits.
func Checksum(text string) string {
	s := strconv.FormatUint(xxhash.Sum64String(text), 16)
	return strings.Repeat("0", 16-len(s)) + s
}
