package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/storefront/internal/database"
	"github.com/mrlokans/storefront/internal/database/orders"
	"github.com/mrlokans/storefront/internal/database/products"
	"github.com/mrlokans/storefront/internal/exporters"
	"github.com/mrlokans/storefront/internal/http"
	"github.com/mrlokans/storefront/internal/importers"
	"github.com/mrlokans/storefront/internal/scheduler"
	"github.com/mrlokans/storefront/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Clearer and health check implementations
var _ importers.Clearer = (*database.Database)(nil)
var _ http.Pinger = (*database.Database)(nil)

// Shipping export readers
var _ exporters.OrderReader = (*orders.Repository)(nil)
var _ exporters.VariantReader = (*products.Repository)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

var _ http.FileImporter = (*importers.Pipeline)(nil)
var _ tasks.Importer = (*importers.Pipeline)(nil)
var _ http.ShippingExport = (*exporters.ShippingExporter)(nil)

// =============================================================================
// Task Queue
// =============================================================================

var _ http.TaskQueue = (*tasks.Client)(nil)
var _ scheduler.Enqueuer = (*tasks.Client)(nil)
