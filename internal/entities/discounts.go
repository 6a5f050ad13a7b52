package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage   DiscountType = "percentage"
	DiscountTypeFixedAmount  DiscountType = "fixed_amount"
	DiscountTypeFreeShipping DiscountType = "free_shipping"
)

type DiscountCode struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Code            string          `gorm:"uniqueIndex;size:100" json:"code"`
	Type            DiscountType    `gorm:"size:20" json:"type"`
	Value           decimal.Decimal `gorm:"type:decimal(10,2)" json:"value"`
	MinimumSubtotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"minimum_subtotal"`
	UsageLimit      int             `json:"usage_limit"` // 0 means unlimited
	TimesUsed       int             `json:"times_used"`
	Active          bool            `json:"active"`
	StartsAt        *time.Time      `json:"starts_at,omitempty"`
	EndsAt          *time.Time      `json:"ends_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
