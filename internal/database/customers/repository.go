// Package customers provides database operations for customer accounts.
package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/storefront/internal/entities"
	"github.com/mrlokans/storefront/internal/importers"
)

// Repository handles customer persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new customers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CustomerExists reports whether a customer with the given email is stored.
// Emails are compared case-insensitively.
func (r *Repository) CustomerExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Customer{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateCustomer(ctx context.Context, customer *entities.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer %q: %w", customer.Email, err)
	}
	return nil
}

// FindCustomerByEmail returns the customer with this email, or nil.
func (r *Repository) FindCustomerByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	if email == "" {
		return nil, nil
	}
	var customer entities.Customer
	err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Compile-time interface check
var _ importers.CustomerStore = (*Repository)(nil)
