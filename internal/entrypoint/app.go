package entrypoint

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/database"
	"github.com/mrlokans/storefront/internal/database/customers"
	"github.com/mrlokans/storefront/internal/database/discounts"
	"github.com/mrlokans/storefront/internal/database/orders"
	"github.com/mrlokans/storefront/internal/database/products"
	"github.com/mrlokans/storefront/internal/exporters"
	"github.com/mrlokans/storefront/internal/importers"
)

// App holds the components shared by the CLI commands and the server.
type App struct {
	DB       *database.Database
	Pipeline *importers.Pipeline
	Shipping *exporters.ShippingExporter
}

// NewApp opens the store at dbPath and wires the import pipeline and the
// shipping exporter on top of it. Reporter output goes to out.
func NewApp(dbPath string, mode importers.WriteMode, out io.Writer, log *zap.Logger) (*App, error) {
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	productRepo := products.NewRepository(db.DB)
	orderRepo := orders.NewRepository(db.DB)

	stores := importers.Stores{
		Products:  productRepo,
		Customers: customers.NewRepository(db.DB),
		Orders:    orderRepo,
		Discounts: discounts.NewRepository(db.DB),
	}
	writer := importers.NewWriter(stores, mode, log)

	return &App{
		DB:       db,
		Pipeline: importers.NewPipeline(writer, db, out, log),
		Shipping: exporters.NewShippingExporter(orderRepo, productRepo, log),
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
