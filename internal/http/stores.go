package http

import (
	"context"
	"io"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/storefront/internal/entities"
	"github.com/mrlokans/storefront/internal/exporters"
	"github.com/mrlokans/storefront/internal/importers"
	"github.com/mrlokans/storefront/internal/tasks"
)

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// FileImporter imports a single uploaded CSV stream.
type FileImporter interface {
	ImportFile(ctx context.Context, entity importers.EntityType, r io.Reader) (importers.Summary, error)
}

// TaskQueue enqueues directory imports and reports task status.
type TaskQueue interface {
	EnqueueImport(task tasks.ImportDirectoryTask) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// ShippingExport writes the shipping CSV for orders in a status.
type ShippingExport interface {
	Export(ctx context.Context, w io.Writer, status entities.OrderStatus) (exporters.ExportResult, error)
}
