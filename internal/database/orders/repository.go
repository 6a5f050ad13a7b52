// Package orders provides database operations for orders and their line items,
// including the queries behind the shipping export.
package orders

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/storefront/internal/entities"
	"github.com/mrlokans/storefront/internal/importers"
)

// Repository handles order and line item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new orders repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// OrderExists reports whether an order with the given order number is stored.
func (r *Repository) OrderExists(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).Where("order_number = ?", orderNumber).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateOrderAggregate inserts an order and its line items in one transaction.
func (r *Repository) CreateOrderAggregate(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &Repository{db: tx}
		if err := txRepo.CreateOrder(ctx, order); err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := txRepo.CreateOrderItem(ctx, &order.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateOrder inserts the order row only.
func (r *Repository) CreateOrder(ctx context.Context, order *entities.Order) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order %q: %w", order.OrderNumber, err)
	}
	return nil
}

func (r *Repository) CreateOrderItem(ctx context.Context, item *entities.OrderItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create line item %q: %w", item.Name, err)
	}
	return nil
}

// GetOrderByNumber retrieves an order with its line items in position order.
func (r *Repository) GetOrderByNumber(ctx context.Context, orderNumber string) (*entities.Order, error) {
	var order entities.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrdersByStatus lists orders in the given status, oldest first, with line items.
func (r *Repository) GetOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	var orders []entities.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		Where("status = ?", status).
		Order("placed_at ASC, id ASC").
		Find(&orders).Error
	return orders, err
}

// Compile-time interface check
var _ importers.OrderStore = (*Repository)(nil)
