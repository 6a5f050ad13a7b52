package importers

import (
	"fmt"
	"strings"
)

// EntityType identifies one kind of imported record.
type EntityType string

const (
	EntityProducts  EntityType = "products"
	EntityCustomers EntityType = "customers"
	EntityOrders    EntityType = "orders"
	EntityDiscounts EntityType = "discounts"
)

// EntityOrder is the dependency order entity types are imported in.
var EntityOrder = []EntityType{EntityProducts, EntityCustomers, EntityOrders, EntityDiscounts}

// Keyword is the singular name used in log lines and export file names.
func (e EntityType) Keyword() string {
	return strings.TrimSuffix(string(e), "s")
}

// ParseEntityType accepts the singular or plural entity name in any case.
func ParseEntityType(s string) (EntityType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, e := range EntityOrder {
		if name == string(e) || name == e.Keyword() {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}
