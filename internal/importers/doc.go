// Package importers moves storefront data exported from the previous
// e-commerce platform into the storefront database.
//
// # Architecture
//
// The import pipeline follows a strictly sequential flow per entity type:
//
//	CSV file → ParseCSV → RawRow → GroupRows → Build* → entities.* → Writer → Reporter
//
// Entity types run in dependency order: products, customers, orders, discounts.
// Orders look up the products and customers written before them, so the
// order of EntityOrder must not change.
//
// # Grouping
//
// One logical entity can span several physical rows: a product with several
// variants, an order with several line items. Rows whose key column is empty
// continue the most recently seen key. Scalar fields are folded with a
// MergePolicy table; child records (variants, images, line items) always
// append in row order.
//
// # Writing
//
// The Writer checks the natural key (handle, email, order number, code)
// before inserting anything, so re-running an import skips what is already
// stored. In WriteAtomic mode an aggregate and its children are inserted in
// one transaction. WriteBestEffort keeps the parent when a child insert fails
// and reports the entity as partially written.
//
// # Example Usage
//
//	writer := importers.NewWriter(stores, importers.WriteAtomic, log)
//	pipeline := importers.NewPipeline(writer, db, os.Stdout, log)
//
//	summary, err := pipeline.Run(ctx, importers.RunOptions{Dir: "./data/import"})
//	if summary.Errored > 0 {
//		os.Exit(1)
//	}
package importers
