package importers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/entities"
)

// WriteMode controls how an aggregate's children are written.
type WriteMode int

const (
	// WriteAtomic inserts the parent and all children in one transaction.
	// Any child failure rolls the parent back and the entity errors.
	WriteAtomic WriteMode = iota
	// WriteBestEffort inserts children one by one after the parent. Failed
	// children are logged and the entity is reported as partially written.
	WriteBestEffort
)

func (m WriteMode) String() string {
	if m == WriteBestEffort {
		return "best-effort"
	}
	return "atomic"
}

// WriteModeFor maps the IMPORT_ATOMIC setting to a write mode.
func WriteModeFor(atomic bool) WriteMode {
	if atomic {
		return WriteAtomic
	}
	return WriteBestEffort
}

// Writer performs the idempotent writes: every aggregate is checked by its
// natural key first and skipped when already stored.
type Writer struct {
	stores Stores
	mode   WriteMode
	log    *zap.Logger
}

func NewWriter(stores Stores, mode WriteMode, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{stores: stores, mode: mode, log: log}
}

func (w *Writer) Mode() WriteMode {
	return w.mode
}

func productOutcome(p *entities.Product) Outcome {
	return Outcome{Entity: EntityProducts, Key: p.Handle, Label: p.Title, Children: len(p.Variants) + len(p.Images)}
}

func customerOutcome(c *entities.Customer) Outcome {
	return Outcome{Entity: EntityCustomers, Key: c.Email, Label: c.FullName()}
}

func orderOutcome(o *entities.Order) Outcome {
	return Outcome{Entity: EntityOrders, Key: o.OrderNumber, Label: o.CustomerEmail, Children: len(o.Items)}
}

func discountOutcome(d *entities.DiscountCode) Outcome {
	return Outcome{Entity: EntityDiscounts, Key: d.Code}
}

func (w *Writer) errored(o Outcome, err error) Outcome {
	o.Kind = OutcomeErrored
	o.Err = err
	w.log.Error("failed to import entity",
		zap.String("entity", string(o.Entity)),
		zap.String("key", o.Key),
		zap.Error(err),
	)
	return o
}

func (w *Writer) childFailed(o *Outcome, err error) {
	o.ChildErrors = append(o.ChildErrors, err)
	w.log.Warn("failed to write child record",
		zap.String("entity", string(o.Entity)),
		zap.String("key", o.Key),
		zap.Error(err),
	)
}

// WriteProduct stores a product with its variants and images.
func (w *Writer) WriteProduct(ctx context.Context, product *entities.Product) Outcome {
	o := productOutcome(product)

	exists, err := w.stores.Products.ProductExists(ctx, product.Handle)
	if err != nil {
		return w.errored(o, fmt.Errorf("failed to check existing product: %w", err))
	}
	if exists {
		o.Kind = OutcomeSkipped
		return o
	}

	if w.mode == WriteAtomic {
		if err := w.stores.Products.CreateProductAggregate(ctx, product); err != nil {
			return w.errored(o, err)
		}
		o.Kind = OutcomeImported
		return o
	}

	if err := w.stores.Products.CreateProduct(ctx, product); err != nil {
		return w.errored(o, err)
	}
	o.Kind = OutcomeImported

	for i := range product.Variants {
		product.Variants[i].ProductID = product.ID
		if err := w.stores.Products.CreateVariant(ctx, &product.Variants[i]); err != nil {
			w.childFailed(&o, err)
		}
	}
	for i := range product.Images {
		product.Images[i].ProductID = product.ID
		if err := w.stores.Products.CreateImage(ctx, &product.Images[i]); err != nil {
			w.childFailed(&o, err)
		}
	}

	return o
}

func (w *Writer) WriteCustomer(ctx context.Context, customer *entities.Customer) Outcome {
	o := customerOutcome(customer)

	exists, err := w.stores.Customers.CustomerExists(ctx, customer.Email)
	if err != nil {
		return w.errored(o, fmt.Errorf("failed to check existing customer: %w", err))
	}
	if exists {
		o.Kind = OutcomeSkipped
		return o
	}

	if err := w.stores.Customers.CreateCustomer(ctx, customer); err != nil {
		return w.errored(o, err)
	}
	o.Kind = OutcomeImported
	return o
}

// WriteOrder stores an order with its line items. Before writing, the order is
// linked to a stored customer by email and each line item to a stored product
// by SKU, then by title.
func (w *Writer) WriteOrder(ctx context.Context, order *entities.Order) Outcome {
	o := orderOutcome(order)

	exists, err := w.stores.Orders.OrderExists(ctx, order.OrderNumber)
	if err != nil {
		return w.errored(o, fmt.Errorf("failed to check existing order: %w", err))
	}
	if exists {
		o.Kind = OutcomeSkipped
		return o
	}

	w.linkCustomer(ctx, order)
	for i := range order.Items {
		w.linkProduct(ctx, &order.Items[i])
	}

	if w.mode == WriteAtomic {
		if err := w.stores.Orders.CreateOrderAggregate(ctx, order); err != nil {
			return w.errored(o, err)
		}
		o.Kind = OutcomeImported
		return o
	}

	if err := w.stores.Orders.CreateOrder(ctx, order); err != nil {
		return w.errored(o, err)
	}
	o.Kind = OutcomeImported

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		if err := w.stores.Orders.CreateOrderItem(ctx, &order.Items[i]); err != nil {
			w.childFailed(&o, err)
		}
	}

	return o
}

func (w *Writer) WriteDiscount(ctx context.Context, discount *entities.DiscountCode) Outcome {
	o := discountOutcome(discount)

	exists, err := w.stores.Discounts.DiscountExists(ctx, discount.Code)
	if err != nil {
		return w.errored(o, fmt.Errorf("failed to check existing discount: %w", err))
	}
	if exists {
		o.Kind = OutcomeSkipped
		return o
	}

	if err := w.stores.Discounts.CreateDiscount(ctx, discount); err != nil {
		return w.errored(o, err)
	}
	o.Kind = OutcomeImported
	return o
}

func (w *Writer) linkCustomer(ctx context.Context, order *entities.Order) {
	if order.CustomerEmail == "" || w.stores.Customers == nil {
		return
	}
	customer, err := w.stores.Customers.FindCustomerByEmail(ctx, order.CustomerEmail)
	if err != nil {
		w.log.Warn("customer lookup failed",
			zap.String("order", order.OrderNumber),
			zap.String("email", order.CustomerEmail),
			zap.Error(err),
		)
		return
	}
	if customer != nil {
		order.CustomerID = &customer.ID
	}
}

// linkProduct resolves a line item to a product: exact variant SKU first,
// then the first product (lowest ID) whose title contains the line item name
// up to " - ". Unmatched items keep an empty product reference.
func (w *Writer) linkProduct(ctx context.Context, item *entities.OrderItem) {
	if item.SKU != "" {
		variant, err := w.stores.Products.FindVariantBySKU(ctx, item.SKU)
		if err != nil {
			w.log.Warn("variant lookup failed", zap.String("sku", item.SKU), zap.Error(err))
		} else if variant != nil {
			productID, variantID := variant.ProductID, variant.ID
			item.ProductID = &productID
			item.VariantID = &variantID
			return
		}
	}

	fragment := TitleFragment(item.Name)
	if fragment == "" {
		return
	}
	product, err := w.stores.Products.FindProductByTitleFragment(ctx, fragment)
	if err != nil {
		w.log.Warn("product lookup failed", zap.String("title", fragment), zap.Error(err))
		return
	}
	if product != nil {
		productID := product.ID
		item.ProductID = &productID
	}
}
