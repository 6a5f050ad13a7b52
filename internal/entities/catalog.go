package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column sizes shared by the gorm tags below and the import normalizer,
// which truncates incoming values to fit.
const (
	HandleMaxLen      = 255
	TitleMaxLen       = 255
	VendorMaxLen      = 255
	ProductTypeMaxLen = 255
	SKUMaxLen         = 100
	BarcodeMaxLen     = 100
	OptionMaxLen      = 255
	ImageURLMaxLen    = 2048
	AltTextMaxLen     = 512
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
)

type Product struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	Handle         string           `gorm:"uniqueIndex;size:255" json:"handle"`
	Title          string           `gorm:"index;size:255" json:"title"`
	Description    string           `gorm:"type:text" json:"description,omitempty"`
	Vendor         string           `gorm:"size:255" json:"vendor,omitempty"`
	ProductType    string           `gorm:"size:255" json:"product_type,omitempty"`
	Tags           []string         `gorm:"serializer:json;type:text" json:"tags,omitempty"`
	Status         ProductStatus    `gorm:"size:20;default:'active'" json:"status"`
	Price          decimal.Decimal  `gorm:"type:decimal(10,2)" json:"price"`
	CompareAtPrice decimal.Decimal  `gorm:"type:decimal(10,2)" json:"compare_at_price"`
	Variants       []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	Images         []ProductImage   `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type ProductVariant struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ProductID         uint            `gorm:"index" json:"product_id"`
	Title             string          `gorm:"size:255" json:"title"`
	SKU               string          `gorm:"index;size:100" json:"sku,omitempty"`
	Barcode           string          `gorm:"size:100" json:"barcode,omitempty"`
	Option1           string          `gorm:"size:255" json:"option1,omitempty"`
	Option2           string          `gorm:"size:255" json:"option2,omitempty"`
	Option3           string          `gorm:"size:255" json:"option3,omitempty"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	CompareAtPrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"compare_at_price"`
	InventoryQuantity int             `json:"inventory_quantity"`
	WeightOz          float64         `json:"weight_oz"`
	RequiresShipping  bool            `json:"requires_shipping"`
	Taxable           bool            `json:"taxable"`
	Position          int             `json:"position"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	URL       string    `gorm:"size:2048" json:"url"`
	AltText   string    `gorm:"size:512" json:"alt_text,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
