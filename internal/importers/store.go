package importers

import (
	"context"

	"github.com/mrlokans/storefront/internal/entities"
)

// ProductStore persists products and resolves line items to products.
// Find* methods return nil, nil when nothing matches.
type ProductStore interface {
	ProductExists(ctx context.Context, handle string) (bool, error)
	CreateProductAggregate(ctx context.Context, product *entities.Product) error
	CreateProduct(ctx context.Context, product *entities.Product) error
	CreateVariant(ctx context.Context, variant *entities.ProductVariant) error
	CreateImage(ctx context.Context, image *entities.ProductImage) error
	FindVariantBySKU(ctx context.Context, sku string) (*entities.ProductVariant, error)
	FindProductByTitleFragment(ctx context.Context, fragment string) (*entities.Product, error)
}

type CustomerStore interface {
	CustomerExists(ctx context.Context, email string) (bool, error)
	CreateCustomer(ctx context.Context, customer *entities.Customer) error
	FindCustomerByEmail(ctx context.Context, email string) (*entities.Customer, error)
}

type OrderStore interface {
	OrderExists(ctx context.Context, orderNumber string) (bool, error)
	CreateOrderAggregate(ctx context.Context, order *entities.Order) error
	CreateOrder(ctx context.Context, order *entities.Order) error
	CreateOrderItem(ctx context.Context, item *entities.OrderItem) error
}

type DiscountStore interface {
	DiscountExists(ctx context.Context, code string) (bool, error)
	CreateDiscount(ctx context.Context, discount *entities.DiscountCode) error
}

// Clearer wipes every imported record before a fresh import.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Stores bundles the per-entity stores the Writer needs.
type Stores struct {
	Products  ProductStore
	Customers CustomerStore
	Orders    OrderStore
	Discounts DiscountStore
}
