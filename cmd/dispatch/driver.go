package main

import (
	"fmt"

	"github.com/pacchoferes/dispatch"
)

// Run executes the driver add command.
func (c *DriverAddCmd) Run(deps *Dependencies) error {
	color := c.Color
	if color == "" {
		color = dispatch.DefaultDriverColor
	}

	driver := &dispatch.Driver{Name: c.Name, Color: color}
	if err := deps.Drivers.CreateDriver(deps.Ctx, driver); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added driver %q\n", driver.Name)
	return nil
}

// Run executes the driver list command.
func (c *DriverListCmd) Run(deps *Dependencies) error {
	var filter dispatch.DriverFilter
	if c.Name != "" {
		filter.Name = &c.Name
	}

	drivers, err := deps.Drivers.FindDrivers(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	if len(drivers) == 0 {
		fmt.Fprintln(deps.Stdout, "No drivers found. Use 'dispatch driver add' or 'dispatch import' to create one.")
		return nil
	}

	for _, d := range drivers {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", d.Color, d.Name)
	}
	return nil
}

// Run executes the driver delete command.
func (c *DriverDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion (addresses are kept)\n")
		return dispatch.Errorf(dispatch.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Drivers.DeleteDriver(deps.Ctx, c.Name); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted driver %q\n", c.Name)
	return nil
}

// Run executes the driver clear command.
func (c *DriverClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deleting all drivers\n")
		return dispatch.Errorf(dispatch.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Drivers.DeleteDrivers(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Deleted all drivers.")
	return nil
}
