package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/storefront/internal/config"
	"github.com/mrlokans/storefront/internal/entities"
	"github.com/mrlokans/storefront/internal/entrypoint"
	"github.com/mrlokans/storefront/internal/importers"
	"github.com/mrlokans/storefront/internal/logger"
)

// ExportShippingCommand writes the shipping CSV for orders awaiting shipment.
type ExportShippingCommand struct {
	DatabasePath string
	OutputPath   string
	Status       string

	cfg *config.Config
	out io.Writer
}

func NewExportShippingCommand(cfg *config.Config) *ExportShippingCommand {
	return &ExportShippingCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *ExportShippingCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-shipping", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the storefront database")
	fs.StringVar(&cmd.OutputPath, "output", config.DefaultShippingExportPath, "Output CSV file")
	fs.StringVar(&cmd.Status, "status", string(entities.OrderStatusProcessing), "Order status to export")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-shipping [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write one row per order with its parcel weight in ounces.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, ok := entities.ParseOrderStatus(cmd.Status); !ok {
		return fmt.Errorf("invalid -status %q", cmd.Status)
	}
	return nil
}

func (cmd *ExportShippingCommand) Run() error {
	log, err := logger.New(cmd.cfg.Log.Env, cmd.cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	app, err := entrypoint.NewApp(cmd.DatabasePath, importers.WriteAtomic, cmd.out, log)
	if err != nil {
		return err
	}
	defer app.Close()

	status, _ := entities.ParseOrderStatus(cmd.Status)
	result, err := app.Shipping.ExportFile(context.Background(), cmd.OutputPath, status)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Exported %d %s orders (%d line items) to %s\n",
		result.OrdersExported, status, result.ItemsExported, cmd.OutputPath)
	if result.OrdersSkipped > 0 {
		fmt.Fprintf(cmd.out, "Skipped %d orders with nothing to ship\n", result.OrdersSkipped)
	}
	if result.ItemsUnweighed > 0 {
		fmt.Fprintf(cmd.out, "Warning: %d line items have no known weight\n", result.ItemsUnweighed)
	}
	return nil
}
