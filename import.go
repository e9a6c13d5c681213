package dispatch

import (
	"context"
	"strings"
)

// Block is one driver section of imported text: a driver name followed by
// the addresses assigned to it.
type Block struct {
	Driver    string
	Addresses []string
}

// ImportSummary reports what an import created.
type ImportSummary struct {
	// ID identifies the import run in logs.
	ID string `json:"id"`

	// Checksum is a hash of the imported text.
	Checksum string `json:"checksum"`

	DriversCreated   int `json:"driversCreated"`
	AddressesCreated int `json:"addressesCreated"`
}

// Importer turns freeform text into drivers and addresses.
//
// Each record is committed on its own. When Import fails part way through,
// the records created before the failure remain and the returned summary
// counts them.
type Importer interface {
	Import(ctx context.Context, text string) (*ImportSummary, error)
}

// ParseBlocks splits text into blocks separated by one or more empty lines.
// Carriage returns are removed first. Within a block, lines are trimmed and
// whitespace-only lines are dropped; the first remaining line is the driver
// name and the rest are addresses.
func ParseBlocks(text string) []Block {
	var blocks []Block
	var lines []string

	flush := func() {
		if len(lines) > 0 {
			blocks = append(blocks, Block{Driver: lines[0], Addresses: lines[1:]})
		}
		lines = nil
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		if line == "" {
			flush()
			continue
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	flush()

	return blocks
}
