package main

import (
	"fmt"

	"github.com/pacchoferes/dispatch"
	"github.com/pacchoferes/dispatch/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	addresses, err := deps.Addresses.FindAddresses(deps.Ctx, dispatch.AddressFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	text, skipped := fs.FormatBoard(addresses)
	if err := fs.WriteExport(c.File, text); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d addresses to %s\n", len(addresses)-skipped, c.File)
	if skipped > 0 {
		fmt.Fprintf(deps.Stderr, "Skipped %d addresses without a driver\n", skipped)
	}
	return nil
}
