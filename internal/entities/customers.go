package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EmailMaxLen   = 255
	NameMaxLen    = 100
	PhoneMaxLen   = 50
	CompanyMaxLen = 255
	AddressMaxLen = 255
	CityMaxLen    = 100
	RegionMaxLen  = 100
	ZipMaxLen     = 20
	CountryMaxLen = 100
)

type Customer struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Email            string          `gorm:"uniqueIndex;size:255" json:"email"`
	FirstName        string          `gorm:"size:100" json:"first_name,omitempty"`
	LastName         string          `gorm:"size:100" json:"last_name,omitempty"`
	Phone            string          `gorm:"size:50" json:"phone,omitempty"`
	Company          string          `gorm:"size:255" json:"company,omitempty"`
	Address1         string          `gorm:"size:255" json:"address1,omitempty"`
	Address2         string          `gorm:"size:255" json:"address2,omitempty"`
	City             string          `gorm:"size:100" json:"city,omitempty"`
	Province         string          `gorm:"size:100" json:"province,omitempty"`
	Zip              string          `gorm:"size:20" json:"zip,omitempty"`
	Country          string          `gorm:"size:100" json:"country,omitempty"`
	AcceptsMarketing bool            `json:"accepts_marketing"`
	TaxExempt        bool            `json:"tax_exempt"`
	TotalSpent       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_spent"`
	TotalOrders      int             `json:"total_orders"`
	Tags             []string        `gorm:"serializer:json;type:text" json:"tags,omitempty"`
	Note             string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// FullName joins first and last name, skipping empty parts.
func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}
