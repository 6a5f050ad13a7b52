package http

import (
	"go.uber.org/zap"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database Pinger
	Importer FileImporter
	Exporter ShippingExport

	// Task queue (optional). Without it the directory import and task
	// status endpoints are not registered.
	TaskQueue TaskQueue

	// ImportDir is the directory queued imports read from.
	ImportDir string

	// Application info
	Version string

	Logger *zap.Logger
}
