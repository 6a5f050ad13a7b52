package exporters

import (
	"context"

	"github.com/mrlokans/storefront/internal/entities"
)

// OrderReader lists the orders an export covers.
type OrderReader interface {
	GetOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
}

// VariantReader resolves line items to the variants that carry their weight.
type VariantReader interface {
	GetVariantsByIDs(ctx context.Context, ids []uint) (map[uint]entities.ProductVariant, error)
	GetDefaultVariants(ctx context.Context, productIDs []uint) (map[uint]entities.ProductVariant, error)
}

type ExportResult struct {
	OrdersExported int `json:"orders_exported"`
	ItemsExported  int `json:"items_exported"`
	ItemsUnweighed int `json:"items_unweighed"`
	OrdersSkipped  int `json:"orders_skipped"`
}
