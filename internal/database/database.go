package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/storefront/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// Models lists every table the storefront owns, parents before children.
func Models() []any {
	return []any{
		&entities.Product{},
		&entities.ProductVariant{},
		&entities.ProductImage{},
		&entities.Customer{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.DiscountCode{},
	}
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(withForeignKeys(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

// withForeignKeys turns on SQLite foreign key enforcement for every pooled connection.
func withForeignKeys(dbPath string) string {
	if strings.Contains(dbPath, "_foreign_keys") {
		return dbPath
	}
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_foreign_keys=on"
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Clear deletes every imported record in foreign-key-safe order:
// line items, orders, images, variants, products, customers, discount codes.
func (d *Database) Clear(ctx context.Context) error {
	order := []struct {
		name  string
		model any
	}{
		{"order items", &entities.OrderItem{}},
		{"orders", &entities.Order{}},
		{"product images", &entities.ProductImage{}},
		{"product variants", &entities.ProductVariant{}},
		{"products", &entities.Product{}},
		{"customers", &entities.Customer{}},
		{"discount codes", &entities.DiscountCode{}},
	}

	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range order {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table.model).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table.name, err)
			}
		}
		return nil
	})
}
