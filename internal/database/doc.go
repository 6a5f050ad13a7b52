// Package database provides the data access layer for the storefront.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, clearing
//	├── products/        # Products, variants and images
//	├── customers/       # Customer accounts
//	├── orders/          # Orders, line items and shipping queries
//	└── discounts/       # Discount codes
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./storefront.db")
//
//	productsRepo := products.NewRepository(db.DB)
//	exists, err := productsRepo.ProductExists(ctx, "candle-a")
//
// # Interface Implementations
//
// The repositories implement the store interfaces the import pipeline writes through:
//
//   - products.Repository: implements importers.ProductStore
//   - customers.Repository: implements importers.CustomerStore
//   - orders.Repository: implements importers.OrderStore
//   - discounts.Repository: implements importers.DiscountStore
//   - Database: implements importers.Clearer
//
// Lookups that may legitimately find nothing (FindVariantBySKU and friends)
// return a nil entity and a nil error when no row matches.
package database
