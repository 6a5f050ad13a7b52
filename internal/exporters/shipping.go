package exporters

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/entities"
)

// ShippingHeader is the column layout of the shipping CSV consumed by the
// label printing service.
var ShippingHeader = []string{
	"Order Number",
	"Name",
	"Email",
	"Phone",
	"Address1",
	"Address2",
	"City",
	"Province",
	"Zip",
	"Country",
	"Shipping Method",
	"Items",
	"Quantity",
	"Weight (oz)",
	"Total",
}

// ShippingExporter writes orders awaiting shipment with their parcel weight.
type ShippingExporter struct {
	orders   OrderReader
	variants VariantReader
	log      *zap.Logger
}

func NewShippingExporter(orders OrderReader, variants VariantReader, log *zap.Logger) *ShippingExporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &ShippingExporter{orders: orders, variants: variants, log: log}
}

// Export writes one CSV row per order in status to w. Orders with no line
// item that requires shipping are left out.
func (e *ShippingExporter) Export(ctx context.Context, w io.Writer, status entities.OrderStatus) (ExportResult, error) {
	result := ExportResult{}

	orders, err := e.orders.GetOrdersByStatus(ctx, status)
	if err != nil {
		return result, fmt.Errorf("failed to load %s orders: %w", status, err)
	}

	weights, err := e.loadWeights(ctx, orders)
	if err != nil {
		return result, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ShippingHeader); err != nil {
		return result, fmt.Errorf("failed to write header: %w", err)
	}

	for _, order := range orders {
		items, quantity := shippableItems(order)
		if len(items) == 0 {
			result.OrdersSkipped++
			continue
		}

		weight, unweighed := weights.orderWeight(order)
		if unweighed > 0 {
			e.log.Warn("order has line items without a known weight",
				zap.String("order", order.OrderNumber),
				zap.Int("items", unweighed),
			)
		}

		record := []string{
			order.OrderNumber,
			order.ShippingName,
			order.CustomerEmail,
			order.ShippingPhone,
			order.Address1,
			order.Address2,
			order.City,
			order.Province,
			order.Zip,
			order.Country,
			order.ShippingMethod,
			strings.Join(items, "; "),
			strconv.Itoa(quantity),
			strconv.FormatFloat(weight, 'f', 2, 64),
			order.Total.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return result, fmt.Errorf("failed to write order %s: %w", order.OrderNumber, err)
		}

		result.OrdersExported++
		result.ItemsExported += len(items)
		result.ItemsUnweighed += unweighed
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return result, fmt.Errorf("failed to flush shipping export: %w", err)
	}

	e.log.Info("shipping export finished",
		zap.String("status", string(status)),
		zap.Int("orders", result.OrdersExported),
		zap.Int("skipped", result.OrdersSkipped),
	)
	return result, nil
}

// ExportFile writes the export to path, creating parent directories.
func (e *ShippingExporter) ExportFile(ctx context.Context, path string, status entities.OrderStatus) (ExportResult, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export file: %w", err)
	}

	result, err := e.Export(ctx, f, status)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close export file: %w", closeErr)
	}
	return result, err
}

func shippableItems(order entities.Order) ([]string, int) {
	var names []string
	quantity := 0
	for _, item := range order.Items {
		if !item.RequiresShipping || item.Quantity <= 0 {
			continue
		}
		names = append(names, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
		quantity += item.Quantity
	}
	return names, quantity
}

// weightTable holds the variants needed to weigh a batch of orders.
type weightTable struct {
	byVariant map[uint]entities.ProductVariant
	byProduct map[uint]entities.ProductVariant
}

func (e *ShippingExporter) loadWeights(ctx context.Context, orders []entities.Order) (weightTable, error) {
	variantIDs := make(map[uint]struct{})
	productIDs := make(map[uint]struct{})
	for _, order := range orders {
		for _, item := range order.Items {
			if item.VariantID != nil {
				variantIDs[*item.VariantID] = struct{}{}
			}
			if item.ProductID != nil {
				productIDs[*item.ProductID] = struct{}{}
			}
		}
	}

	byVariant, err := e.variants.GetVariantsByIDs(ctx, keys(variantIDs))
	if err != nil {
		return weightTable{}, fmt.Errorf("failed to load variants: %w", err)
	}
	byProduct, err := e.variants.GetDefaultVariants(ctx, keys(productIDs))
	if err != nil {
		return weightTable{}, fmt.Errorf("failed to load default variants: %w", err)
	}
	return weightTable{byVariant: byVariant, byProduct: byProduct}, nil
}

// orderWeight sums quantity × variant weight over the items that ship. Items
// linked only to a product use the product's first variant. It also returns
// how many shippable items had no weight source.
func (t weightTable) orderWeight(order entities.Order) (float64, int) {
	total := 0.0
	unweighed := 0
	for _, item := range order.Items {
		if !item.RequiresShipping || item.Quantity <= 0 {
			continue
		}
		variant, ok := t.variantFor(item)
		if !ok {
			unweighed++
			continue
		}
		total += float64(item.Quantity) * variant.WeightOz
	}
	return total, unweighed
}

func (t weightTable) variantFor(item entities.OrderItem) (entities.ProductVariant, bool) {
	if item.VariantID != nil {
		if v, ok := t.byVariant[*item.VariantID]; ok {
			return v, true
		}
	}
	if item.ProductID != nil {
		if v, ok := t.byProduct[*item.ProductID]; ok {
			return v, true
		}
	}
	return entities.ProductVariant{}, false
}

func keys(set map[uint]struct{}) []uint {
	out := make([]uint, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
