package importers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/entities"
)

// memoryStore is an in-memory implementation of every store interface.
// Aggregate writes are all-or-nothing, matching the database repositories.
type memoryStore struct {
	nextID    uint
	products  []*entities.Product
	variants  []*entities.ProductVariant
	images    []*entities.ProductImage
	customers []*entities.Customer
	orders    []*entities.Order
	items     []*entities.OrderItem
	discounts []*entities.DiscountCode

	failVariantSKU string
	failExists     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (m *memoryStore) stores() Stores {
	return Stores{Products: m, Customers: m, Orders: m, Discounts: m}
}

func (m *memoryStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memoryStore) ProductExists(_ context.Context, handle string) (bool, error) {
	if m.failExists != nil {
		return false, m.failExists
	}
	for _, p := range m.products {
		if p.Handle == handle {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) CreateProductAggregate(ctx context.Context, product *entities.Product) error {
	for _, v := range product.Variants {
		if m.failVariantSKU != "" && v.SKU == m.failVariantSKU {
			return errors.New("variant insert failed")
		}
	}
	if err := m.CreateProduct(ctx, product); err != nil {
		return err
	}
	for i := range product.Variants {
		product.Variants[i].ProductID = product.ID
		_ = m.CreateVariant(ctx, &product.Variants[i])
	}
	for i := range product.Images {
		product.Images[i].ProductID = product.ID
		_ = m.CreateImage(ctx, &product.Images[i])
	}
	return nil
}

func (m *memoryStore) CreateProduct(_ context.Context, product *entities.Product) error {
	product.ID = m.id()
	m.products = append(m.products, product)
	return nil
}

func (m *memoryStore) CreateVariant(_ context.Context, variant *entities.ProductVariant) error {
	if m.failVariantSKU != "" && variant.SKU == m.failVariantSKU {
		return errors.New("variant insert failed")
	}
	variant.ID = m.id()
	m.variants = append(m.variants, variant)
	return nil
}

func (m *memoryStore) CreateImage(_ context.Context, image *entities.ProductImage) error {
	image.ID = m.id()
	m.images = append(m.images, image)
	return nil
}

func (m *memoryStore) FindVariantBySKU(_ context.Context, sku string) (*entities.ProductVariant, error) {
	for _, v := range m.variants {
		if v.SKU == sku {
			return v, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) FindProductByTitleFragment(_ context.Context, fragment string) (*entities.Product, error) {
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(fragment)) {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) CustomerExists(_ context.Context, email string) (bool, error) {
	c, _ := m.FindCustomerByEmail(context.Background(), email)
	return c != nil, nil
}

func (m *memoryStore) CreateCustomer(_ context.Context, customer *entities.Customer) error {
	customer.ID = m.id()
	m.customers = append(m.customers, customer)
	return nil
}

func (m *memoryStore) FindCustomerByEmail(_ context.Context, email string) (*entities.Customer, error) {
	for _, c := range m.customers {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) OrderExists(_ context.Context, orderNumber string) (bool, error) {
	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) CreateOrderAggregate(ctx context.Context, order *entities.Order) error {
	if err := m.CreateOrder(ctx, order); err != nil {
		return err
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		_ = m.CreateOrderItem(ctx, &order.Items[i])
	}
	return nil
}

func (m *memoryStore) CreateOrder(_ context.Context, order *entities.Order) error {
	order.ID = m.id()
	m.orders = append(m.orders, order)
	return nil
}

func (m *memoryStore) CreateOrderItem(_ context.Context, item *entities.OrderItem) error {
	item.ID = m.id()
	m.items = append(m.items, item)
	return nil
}

func (m *memoryStore) DiscountExists(_ context.Context, code string) (bool, error) {
	for _, d := range m.discounts {
		if d.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) CreateDiscount(_ context.Context, discount *entities.DiscountCode) error {
	discount.ID = m.id()
	m.discounts = append(m.discounts, discount)
	return nil
}

func testProduct(handle string, skus ...string) *entities.Product {
	p := &entities.Product{Handle: handle, Title: strings.ToUpper(handle)}
	for i, sku := range skus {
		p.Variants = append(p.Variants, entities.ProductVariant{SKU: sku, Position: i + 1})
	}
	return p
}

func TestWriter_WriteProduct_SkipsExisting(t *testing.T) {
	store := newMemoryStore()
	writer := NewWriter(store.stores(), WriteAtomic, zap.NewNop())
	ctx := context.Background()

	first := writer.WriteProduct(ctx, testProduct("candle-a", "CA-1", "CA-2"))
	second := writer.WriteProduct(ctx, testProduct("candle-a", "CA-1", "CA-2"))

	assert.Equal(t, OutcomeImported, first.Kind)
	assert.Equal(t, 2, first.Children)
	assert.Equal(t, OutcomeSkipped, second.Kind)
	assert.Len(t, store.products, 1)
	assert.Len(t, store.variants, 2)
}

func TestWriter_WriteProduct_AtomicChildFailure(t *testing.T) {
	store := newMemoryStore()
	store.failVariantSKU = "BAD"
	writer := NewWriter(store.stores(), WriteAtomic, zap.NewNop())

	outcome := writer.WriteProduct(context.Background(), testProduct("candle-a", "OK", "BAD"))

	assert.Equal(t, OutcomeErrored, outcome.Kind)
	require.Error(t, outcome.Err)
	assert.Empty(t, store.products, "parent must not survive a failed child")
	assert.Empty(t, store.variants)
}

func TestWriter_WriteProduct_BestEffortChildFailure(t *testing.T) {
	store := newMemoryStore()
	store.failVariantSKU = "BAD"
	writer := NewWriter(store.stores(), WriteBestEffort, zap.NewNop())

	product := testProduct("candle-a", "OK", "BAD", "ALSO-OK")
	product.Images = []entities.ProductImage{{URL: "https://cdn/a.jpg", Position: 1}}

	outcome := writer.WriteProduct(context.Background(), product)

	assert.Equal(t, OutcomeImported, outcome.Kind)
	assert.True(t, outcome.Partial())
	assert.Len(t, outcome.ChildErrors, 1)
	require.Len(t, store.products, 1)
	assert.Len(t, store.variants, 2)
	require.Len(t, store.images, 1)
	assert.Equal(t, store.products[0].ID, store.images[0].ProductID)
	assert.Equal(t, "ALSO-OK", store.variants[1].SKU, "siblings after a failure are still written in order")
}

func TestWriter_ExistenceCheckError(t *testing.T) {
	store := newMemoryStore()
	store.failExists = errors.New("database is locked")
	writer := NewWriter(store.stores(), WriteAtomic, zap.NewNop())

	outcome := writer.WriteProduct(context.Background(), testProduct("candle-a"))

	assert.Equal(t, OutcomeErrored, outcome.Kind)
	assert.ErrorContains(t, outcome.Err, "database is locked")
	assert.Empty(t, store.products)
}

func TestWriter_WriteOrder_LinksProductsAndCustomer(t *testing.T) {
	store := newMemoryStore()
	writer := NewWriter(store.stores(), WriteAtomic, zap.NewNop())
	ctx := context.Background()

	candle := &entities.Product{Handle: "candle-a", Title: "Lavender Candle A", Variants: []entities.ProductVariant{{SKU: "CA-8"}}}
	require.Equal(t, OutcomeImported, writer.WriteProduct(ctx, candle).Kind)
	giftBox := &entities.Product{Handle: "gift-box", Title: "Gift Box"}
	require.Equal(t, OutcomeImported, writer.WriteProduct(ctx, giftBox).Kind)
	require.Equal(t, OutcomeImported, writer.WriteCustomer(ctx, &entities.Customer{Email: "jane@example.com"}).Kind)

	order := &entities.Order{
		OrderNumber:   "#1001",
		CustomerEmail: "JANE@example.com",
		Items: []entities.OrderItem{
			{Name: "Lavender Candle A - 8 oz", SKU: "CA-8", Quantity: 1},
			{Name: "gift box - Large", SKU: "UNKNOWN", Quantity: 1},
			{Name: "Mystery Item", Quantity: 1},
		},
	}

	outcome := writer.WriteOrder(ctx, order)

	assert.Equal(t, OutcomeImported, outcome.Kind)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, store.customers[0].ID, *order.CustomerID)

	require.NotNil(t, order.Items[0].ProductID)
	assert.Equal(t, candle.ID, *order.Items[0].ProductID)
	require.NotNil(t, order.Items[0].VariantID)
	assert.Equal(t, candle.Variants[0].ID, *order.Items[0].VariantID)

	require.NotNil(t, order.Items[1].ProductID, "falls back to title match")
	assert.Equal(t, giftBox.ID, *order.Items[1].ProductID)
	assert.Nil(t, order.Items[1].VariantID)

	assert.Nil(t, order.Items[2].ProductID)
	assert.Len(t, store.items, 3)

	again := writer.WriteOrder(ctx, &entities.Order{OrderNumber: "#1001"})
	assert.Equal(t, OutcomeSkipped, again.Kind)
}

func TestWriter_WriteCustomerAndDiscount_Idempotent(t *testing.T) {
	store := newMemoryStore()
	writer := NewWriter(store.stores(), WriteAtomic, zap.NewNop())
	ctx := context.Background()

	assert.Equal(t, OutcomeImported, writer.WriteCustomer(ctx, &entities.Customer{Email: "a@example.com"}).Kind)
	assert.Equal(t, OutcomeSkipped, writer.WriteCustomer(ctx, &entities.Customer{Email: "a@example.com"}).Kind)
	assert.Equal(t, OutcomeImported, writer.WriteDiscount(ctx, &entities.DiscountCode{Code: "WELCOME10"}).Kind)
	assert.Equal(t, OutcomeSkipped, writer.WriteDiscount(ctx, &entities.DiscountCode{Code: "WELCOME10"}).Kind)
	assert.Len(t, store.customers, 1)
	assert.Len(t, store.discounts, 1)
}

func TestWriteModeFor(t *testing.T) {
	assert.Equal(t, WriteAtomic, WriteModeFor(true))
	assert.Equal(t, WriteBestEffort, WriteModeFor(false))
	assert.Equal(t, "best-effort", WriteBestEffort.String())
}
