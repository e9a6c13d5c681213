package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pacchoferes/dispatch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Drivers   dispatch.DriverService
	Addresses dispatch.AddressService
	Importer  dispatch.Importer
	Searcher  dispatch.Searcher

	// Logger is set when --debug is given.
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB    string `name:"db" help:"Database path (default ~/.dispatch/dispatch.db, or $DISPATCH_DB)"`
	Debug bool   `help:"Log store operations to stderr"`

	Driver  DriverCmd  `cmd:"" help:"Manage drivers"`
	Address AddressCmd `cmd:"" help:"Manage assigned addresses"`
	Import  ImportCmd  `cmd:"" help:"Import drivers and addresses from a text file"`
	Search  SearchCmd  `cmd:"" help:"Find the drivers assigned to addresses"`
	Export  ExportCmd  `cmd:"" help:"Write assigned addresses to a file in import format"`
	Serve   ServeCmd   `cmd:"" help:"Serve the JSON API and web client"`
}

// DriverCmd groups the driver subcommands.
type DriverCmd struct {
	Add    DriverAddCmd    `cmd:"" help:"Add a driver"`
	List   DriverListCmd   `cmd:"" help:"List drivers"`
	Delete DriverDeleteCmd `cmd:"" help:"Delete a driver (keeps its addresses)"`
	Clear  DriverClearCmd  `cmd:"" help:"Delete all drivers (keeps addresses)"`
}

// DriverAddCmd is the "driver add" subcommand.
type DriverAddCmd struct {
	Name  string `arg:"" help:"Driver name"`
	Color string `short:"c" default:"#0b5fff" help:"Display color (CSS color)"`
}

// DriverListCmd is the "driver list" subcommand.
type DriverListCmd struct {
	Name string `help:"Show only the driver with this exact name"`
}

// DriverDeleteCmd is the "driver delete" subcommand.
type DriverDeleteCmd struct {
	Name  string `arg:"" help:"Driver name"`
	Force bool   `help:"Confirm deletion"`
}

// DriverClearCmd is the "driver clear" subcommand.
type DriverClearCmd struct {
	Force bool `help:"Confirm deletion"`
}

// AddressCmd groups the address subcommands.
type AddressCmd struct {
	Add   AddressAddCmd   `cmd:"" help:"Assign an address to a driver"`
	List  AddressListCmd  `cmd:"" help:"List addresses with their drivers"`
	Clear AddressClearCmd `cmd:"" help:"Delete all addresses"`
}

// AddressAddCmd is the "address add" subcommand.
type AddressAddCmd struct {
	Address string `arg:"" help:"Address text"`
	Driver  string `short:"d" required:"" help:"Driver name"`
}

// AddressListCmd is the "address list" subcommand.
type AddressListCmd struct {
	Driver string `short:"d" help:"Show only addresses assigned to this driver"`
	Offset int    `help:"Skip this many addresses"`
	Limit  int    `help:"Show at most this many addresses (0 for all)"`
}

// AddressClearCmd is the "address clear" subcommand.
type AddressClearCmd struct {
	Force bool `help:"Confirm deletion"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" help:"Text file: blocks separated by blank lines, driver name first"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Text []string `arg:"" help:"Addresses separated by commas, newlines or ' y '"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	File string `arg:"" help:"Output file"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string `default:":3000" env:"DISPATCH_ADDR" help:"Listen address"`
	Static   string `env:"DISPATCH_STATIC" help:"Directory of web client assets"`
	LogLevel string `default:"info" enum:"debug,info,warn,error" env:"DISPATCH_LOG_LEVEL" help:"Minimum log level"`
}
