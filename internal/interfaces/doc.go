// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Store Interfaces (internal/importers/store.go)
//
//   - ProductStore, CustomerStore, OrderStore, DiscountStore: existence checks,
//     aggregate writes and the lookups used to link order lines and customers
//   - Clearer: removes all imported data before a --clear run
//
// ## Export Interfaces (internal/exporters/generic.go)
//
//   - OrderReader: orders by status
//   - VariantReader: variant weights by ID or by product
//
// ## Server Interfaces (internal/http/stores.go)
//
//   - Pinger, FileImporter, TaskQueue, ShippingExport
//
// ## Background Work
//
//   - tasks.Importer: what the import queue runs
//   - scheduler.Enqueuer: where scheduled imports go
//
// # Adding a New Entity Type
//
// To import a new kind of record:
//
//  1. Add the model to internal/entities and to database.Models().
//  2. Add a repository under internal/database and a store interface in
//     internal/importers/store.go.
//  3. Add the EntityType with its filename keyword, a MergePolicy and a
//     Build function, and a Write method on importers.Writer.
//  4. Add a compile-time check to checks.go.
package interfaces
