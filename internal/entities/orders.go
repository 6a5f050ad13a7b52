package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderNumberMaxLen    = 50
	CurrencyMaxLen       = 3
	ShippingMethodMaxLen = 255
	LineItemNameMaxLen   = 255
	DiscountCodeMaxLen   = 100
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusPartiallyPaid     PaymentStatus = "partially_paid"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentStatusVoided            PaymentStatus = "voided"
)

type Order struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderNumber    string          `gorm:"uniqueIndex;size:50" json:"order_number"`
	CustomerID     *uint           `gorm:"index" json:"customer_id,omitempty"`
	CustomerEmail  string          `gorm:"index;size:255" json:"customer_email"`
	Status         OrderStatus     `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus   `gorm:"size:20;default:'pending'" json:"payment_status"`
	Currency       string          `gorm:"size:3" json:"currency,omitempty"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping_cost"`
	Tax            decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	DiscountCode   string          `gorm:"size:100" json:"discount_code,omitempty"`
	ShippingMethod string          `gorm:"size:255" json:"shipping_method,omitempty"`
	ShippingName   string          `gorm:"size:100" json:"shipping_name,omitempty"`
	ShippingPhone  string          `gorm:"size:50" json:"shipping_phone,omitempty"`
	Address1       string          `gorm:"size:255" json:"address1,omitempty"`
	Address2       string          `gorm:"size:255" json:"address2,omitempty"`
	City           string          `gorm:"size:100" json:"city,omitempty"`
	Province       string          `gorm:"size:100" json:"province,omitempty"`
	Zip            string          `gorm:"size:20" json:"zip,omitempty"`
	Country        string          `gorm:"size:100" json:"country,omitempty"`
	Notes          string          `gorm:"type:text" json:"notes,omitempty"`
	PlacedAt       *time.Time      `json:"placed_at,omitempty"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	FulfilledAt    *time.Time      `json:"fulfilled_at,omitempty"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	OrderID          uint            `gorm:"index" json:"order_id"`
	ProductID        *uint           `gorm:"index" json:"product_id,omitempty"`
	VariantID        *uint           `gorm:"index" json:"variant_id,omitempty"`
	Name             string          `gorm:"size:255" json:"name"`
	SKU              string          `gorm:"size:100" json:"sku,omitempty"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	RequiresShipping bool            `json:"requires_shipping"`
	Position         int             `json:"position"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ParseOrderStatus accepts the lower-case status names stored on orders.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch status := OrderStatus(s); status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return status, true
	}
	return "", false
}
