package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/cli"
	"github.com/mrlokans/storefront/internal/config"
	"github.com/mrlokans/storefront/internal/entrypoint"
	"github.com/mrlokans/storefront/internal/logger"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every subcommand in internal/cli.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// No arguments runs a plain import from the configured directory
	name := "import"
	var args []string
	if len(os.Args) >= 2 {
		name = os.Args[1]
		args = os.Args[2:]
	}

	var cmd command
	switch name {
	case "import":
		cmd = cli.NewImportCommand(cfg)

	case "export-shipping":
		cmd = cli.NewExportShippingCommand(cfg)

	case "serve":
		log := logger.MustNew(cfg.Log.Env, cfg.Log.Level)
		defer func() { _ = log.Sync() }()
		if err := entrypoint.Run(cfg, Version, log); err != nil {
			log.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
		return

	case "version":
		fmt.Printf("storefront %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  import           Import CSV exports into the store (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  export-shipping  Write a shipping CSV for orders awaiting shipment\n")
	fmt.Fprintf(os.Stderr, "  serve            Start the HTTP server with scheduled imports\n")
	fmt.Fprintf(os.Stderr, "  version          Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
