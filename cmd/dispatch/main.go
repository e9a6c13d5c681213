package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/pacchoferes/dispatch"
	"github.com/pacchoferes/dispatch/colorful"
	"github.com/pacchoferes/dispatch/importer"
	"github.com/pacchoferes/dispatch/search"
	dispatchslog "github.com/pacchoferes/dispatch/slog"
	"github.com/pacchoferes/dispatch/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	// Opened once per Run and shared by every service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DriverService  dispatch.DriverService
	AddressService dispatch.AddressService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dispatch"),
		kong.Description("Assign addresses to drivers and find drivers by address."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no command specified. Run 'dispatch --help' to see available commands")
		return dispatch.Errorf(dispatch.EINVALID, "no command specified")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DISPATCH_DB to use a different database path\n")
		err = fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	defer m.Close()

	m.DriverService = sqlite.NewDriverService(m.DB)
	m.AddressService = sqlite.NewAddressService(m.DB)

	deps.Drivers = m.DriverService
	deps.Addresses = m.AddressService

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Drivers = dispatchslog.NewLoggingDriverService(deps.Drivers, logger)
		deps.Addresses = dispatchslog.NewLoggingAddressService(deps.Addresses, logger)
		deps.Logger = logger
	}

	deps.Importer = &importer.Importer{
		Drivers:   deps.Drivers,
		Addresses: deps.Addresses,
		Colors:    colorful.NewGenerator(),
	}
	deps.Searcher = &search.Searcher{Addresses: deps.Addresses}

	if cli.Debug {
		deps.Importer = dispatchslog.NewLoggingImporter(deps.Importer, deps.Logger)
		deps.Searcher = dispatchslog.NewLoggingSearcher(deps.Searcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DISPATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "dispatch.db"
	}
	dir := filepath.Join(home, ".dispatch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "dispatch.db")
}
