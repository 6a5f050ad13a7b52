package config

const (
	// DefaultDatabasePath is the default path for the storefront database
	DefaultDatabasePath = "./storefront.db"

	// DefaultImportDir is where export files from the previous platform are dropped
	DefaultImportDir = "./data/import"

	// DefaultShippingExportPath is the default output for the shipping CSV export
	DefaultShippingExportPath = "./data/export/shipping.csv"
)
