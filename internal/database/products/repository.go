// Package products provides database operations for the product catalog:
// products, their variants and their images.
//
// # Interface Implementation
//
//	var _ importers.ProductStore = (*Repository)(nil)
package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/storefront/internal/entities"
	"github.com/mrlokans/storefront/internal/importers"
)

// Repository handles product, variant and image persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new products repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ProductExists reports whether a product with the given handle is stored.
func (r *Repository) ProductExists(ctx context.Context, handle string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Product{}).Where("handle = ?", handle).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetProductByHandle retrieves a product with its variants and images in position order.
func (r *Repository) GetProductByHandle(ctx context.Context, handle string) (*entities.Product, error) {
	var product entities.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		Where("handle = ?", handle).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProductAggregate inserts a product and all of its variants and images
// in one transaction. Children are inserted one at a time in slice order; a
// failure on any of them rolls back the product as well.
func (r *Repository) CreateProductAggregate(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &Repository{db: tx}
		if err := txRepo.CreateProduct(ctx, product); err != nil {
			return err
		}
		for i := range product.Variants {
			product.Variants[i].ProductID = product.ID
			if err := txRepo.CreateVariant(ctx, &product.Variants[i]); err != nil {
				return err
			}
		}
		for i := range product.Images {
			product.Images[i].ProductID = product.ID
			if err := txRepo.CreateImage(ctx, &product.Images[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateProduct inserts the product row only; associations are left to the caller.
func (r *Repository) CreateProduct(ctx context.Context, product *entities.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product %q: %w", product.Handle, err)
	}
	return nil
}

func (r *Repository) CreateVariant(ctx context.Context, variant *entities.ProductVariant) error {
	if err := r.db.WithContext(ctx).Create(variant).Error; err != nil {
		return fmt.Errorf("failed to create variant %q: %w", variant.Title, err)
	}
	return nil
}

func (r *Repository) CreateImage(ctx context.Context, image *entities.ProductImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image %q: %w", image.URL, err)
	}
	return nil
}

// FindVariantBySKU returns the first variant with exactly this SKU, or nil.
func (r *Repository) FindVariantBySKU(ctx context.Context, sku string) (*entities.ProductVariant, error) {
	if sku == "" {
		return nil, nil
	}
	var variant entities.ProductVariant
	err := r.db.WithContext(ctx).Where("sku = ?", sku).Order("id ASC").First(&variant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// FindProductByTitleFragment returns the lowest-ID product whose title contains
// fragment, compared case-insensitively, or nil.
func (r *Repository) FindProductByTitleFragment(ctx context.Context, fragment string) (*entities.Product, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, nil
	}
	var product entities.Product
	err := r.db.WithContext(ctx).
		Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(fragment)+"%").
		Order("id ASC").
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes % and _ match themselves in a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GetVariantsByIDs loads variants keyed by ID.
func (r *Repository) GetVariantsByIDs(ctx context.Context, ids []uint) (map[uint]entities.ProductVariant, error) {
	result := make(map[uint]entities.ProductVariant, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var variants []entities.ProductVariant
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&variants).Error; err != nil {
		return nil, err
	}
	for _, v := range variants {
		result[v.ID] = v
	}
	return result, nil
}

// GetDefaultVariants returns the first variant (lowest position) of each
// product, keyed by product ID. Products without variants are absent.
func (r *Repository) GetDefaultVariants(ctx context.Context, productIDs []uint) (map[uint]entities.ProductVariant, error) {
	result := make(map[uint]entities.ProductVariant, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var variants []entities.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("product_id ASC, position ASC, id ASC").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	for _, v := range variants {
		if _, seen := result[v.ProductID]; !seen {
			result[v.ProductID] = v
		}
	}
	return result, nil
}

// Compile-time interface check
var _ importers.ProductStore = (*Repository)(nil)
