// Package discounts provides database operations for discount codes.
package discounts

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/storefront/internal/entities"
	"github.com/mrlokans/storefront/internal/importers"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DiscountExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.DiscountCode{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateDiscount(ctx context.Context, discount *entities.DiscountCode) error {
	if err := r.db.WithContext(ctx).Create(discount).Error; err != nil {
		return fmt.Errorf("failed to create discount code %q: %w", discount.Code, err)
	}
	return nil
}

func (r *Repository) GetDiscountByCode(ctx context.Context, code string) (*entities.DiscountCode, error) {
	var discount entities.DiscountCode
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&discount).Error; err != nil {
		return nil, err
	}
	return &discount, nil
}

// Compile-time interface check
var _ importers.DiscountStore = (*Repository)(nil)
