package main

import (
	"fmt"

	"github.com/pacchoferes/dispatch"
	"github.com/pacchoferes/dispatch/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	text, err := fs.ReadImportFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", importErrorMessage(err))
		return err
	}

	summary, err := deps.Importer.Import(deps.Ctx, text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		// Records stored before the failure are kept.
		if summary != nil {
			fmt.Fprintf(deps.Stderr, "Stored before failure: %d drivers, %d addresses\n",
				summary.DriversCreated, summary.AddressesCreated)
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, "Import complete.")
	fmt.Fprintf(deps.Stdout, "New drivers: %d\n", summary.DriversCreated)
	fmt.Fprintf(deps.Stdout, "Addresses added: %d\n", summary.AddressesCreated)
	return nil
}

// importErrorMessage reports file errors verbatim and application errors by message.
func importErrorMessage(err error) string {
	if dispatch.ErrorCode(err) == dispatch.EINTERNAL {
		return err.Error()
	}
	return dispatch.ErrorMessage(err)
}
