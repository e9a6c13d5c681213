package main

import (
	"fmt"
	"strings"

	"github.com/pacchoferes/dispatch"
)

// Run executes the address add command.
func (c *AddressAddCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.Driver) == "" {
		fmt.Fprintln(deps.Stderr, "error: driver required")
		return dispatch.Errorf(dispatch.EINVALID, "driver required")
	}

	address := &dispatch.Address{Address: c.Address, Driver: c.Driver}
	if err := deps.Addresses.CreateAddress(deps.Ctx, address); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Assigned %q to %s\n", address.Address, address.Driver)
	return nil
}

// Run executes the address list command.
func (c *AddressListCmd) Run(deps *Dependencies) error {
	if c.Offset < 0 || c.Limit < 0 {
		fmt.Fprintln(deps.Stderr, "error: offset and limit must not be negative")
		return dispatch.Errorf(dispatch.EINVALID, "offset and limit must not be negative")
	}

	var driverFilter dispatch.DriverFilter
	addressFilter := dispatch.AddressFilter{Offset: c.Offset, Limit: c.Limit}
	if c.Driver != "" {
		driverFilter.Name = &c.Driver
		addressFilter.Driver = &c.Driver
	}

	drivers, err := deps.Drivers.FindDrivers(deps.Ctx, driverFilter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	addresses, err := deps.Addresses.FindAddresses(deps.Ctx, addressFilter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	if len(addresses) == 0 {
		fmt.Fprintln(deps.Stdout, "No addresses found. Use 'dispatch address add' or 'dispatch import' to add some.")
		return nil
	}

	for _, a := range dispatch.ResolveBoard(drivers, addresses) {
		fmt.Fprintf(deps.Stdout, "%d  %s  [%s]\n", a.Address.ID, a.Address.Address, a.Label())
	}
	return nil
}

// Run executes the address clear command.
func (c *AddressClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deleting all addresses\n")
		return dispatch.Errorf(dispatch.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Addresses.DeleteAddresses(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Deleted all addresses.")
	return nil
}
