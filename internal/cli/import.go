package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrlokans/storefront/internal/config"
	"github.com/mrlokans/storefront/internal/entrypoint"
	"github.com/mrlokans/storefront/internal/importers"
	"github.com/mrlokans/storefront/internal/logger"
)

// ErrImportIncomplete is returned when the run finished but at least one
// record errored or one file could not be read.
var ErrImportIncomplete = errors.New("import finished with errors")

// ImportCommand loads the export files of the previous platform into the store.
type ImportCommand struct {
	Dir          string
	DatabasePath string
	Clear        bool
	DryRun       bool
	Verbose      bool
	Atomic       bool

	cfg *config.Config
	out io.Writer
}

func NewImportCommand(cfg *config.Config) *ImportCommand {
	return &ImportCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)

	fs.StringVar(&cmd.Dir, "dir", cmd.cfg.Import.Dir, "Directory holding the CSV export files")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the storefront database")
	fs.BoolVar(&cmd.Clear, "clear", false, "Delete all existing storefront data before importing")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&cmd.Atomic, "atomic", cmd.cfg.Import.Atomic, "Write each record and its children in one transaction")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import products, customers, orders and discounts from CSV exports.\n\n")
		fmt.Fprintf(os.Stderr, "Files are matched by name: any .csv whose name contains \"product\",\n")
		fmt.Fprintf(os.Stderr, "\"customer\", \"order\" or \"discount\". Records that already exist are skipped,\n")
		fmt.Fprintf(os.Stderr, "so the import can be re-run safely.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Import everything from the default directory:\n")
		fmt.Fprintf(os.Stderr, "  %s import\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Start over from an empty store:\n")
		fmt.Fprintf(os.Stderr, "  %s import -clear -dir ./exports\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview what would be imported:\n")
		fmt.Fprintf(os.Stderr, "  %s import -dry-run\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ImportCommand) Run() error {
	level := cmd.cfg.Log.Level
	if cmd.Verbose {
		level = "debug"
	}
	log, err := logger.New(cmd.cfg.Log.Env, level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	fmt.Fprintln(cmd.out, "Storefront Import")
	fmt.Fprintln(cmd.out, "=================")
	if cmd.DryRun {
		fmt.Fprintln(cmd.out, "DRY RUN MODE - No changes will be made")
	}
	fmt.Fprintf(cmd.out, "Directory: %s\n", cmd.Dir)
	fmt.Fprintf(cmd.out, "Database:  %s\n", cmd.DatabasePath)

	app, err := entrypoint.NewApp(cmd.DatabasePath, importers.WriteModeFor(cmd.Atomic), cmd.out, log)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := app.Pipeline.Run(ctx, importers.RunOptions{
		Dir:    cmd.Dir,
		Clear:  cmd.Clear,
		DryRun: cmd.DryRun,
	})
	if err != nil {
		return err
	}
	if summary.HasErrors() {
		return ErrImportIncomplete
	}
	return nil
}
