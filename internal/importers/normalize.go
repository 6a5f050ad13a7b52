package importers

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/mrlokans/storefront/internal/entities"
)

// GramsPerOunce converts the export's gram weights to the ounces used for shipping.
const GramsPerOunce = 28.35

// DefaultVariantTitle names a variant that has no option values.
const DefaultVariantTitle = "Default Title"

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// ParseMoney reads a price such as "10.00", "$1,250.50" or "-5". Anything
// unparseable becomes zero.
func ParseMoney(s string) decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseFloat reads a plain number, defaulting to zero. NaN and infinities
// count as non-numeric.
func ParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseQuantity reads a whole quantity. Decimal input ("3.0") is truncated;
// anything unparseable or outside the int32 range becomes zero.
func ParseQuantity(s string) int {
	f := ParseFloat(s)
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// ParseBool reads TRUE/yes/1 style flags, returning def for empty or unknown values.
func ParseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	case "false", "no", "n", "0":
		return false
	default:
		return def
	}
}

func GramsToOunces(grams float64) float64 {
	return grams / GramsPerOunce
}

// SplitTags splits a comma-separated list into trimmed, non-empty tokens.
func SplitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// VariantTitle joins the non-empty option values with " / ".
func VariantTitle(option1, option2, option3 string) string {
	var parts []string
	for _, o := range []string{option1, option2, option3} {
		if o = strings.TrimSpace(o); o != "" {
			parts = append(parts, o)
		}
	}
	if len(parts) == 0 {
		return DefaultVariantTitle
	}
	return strings.Join(parts, " / ")
}

// TitleFragment is the part of a line item name before the first " - ",
// which drops the variant suffix the export appends to product titles.
func TitleFragment(name string) string {
	if i := strings.Index(name, " - "); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func normalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

// MapOrderStatus translates the export's financial and fulfillment statuses.
//
// Fulfillment wins when it is recognised: "fulfilled" is delivered,
// "shipped" and "partial" are shipped. Otherwise the financial status decides.
// Payment status always follows the financial status.
func MapOrderStatus(financial, fulfillment string) (entities.OrderStatus, entities.PaymentStatus) {
	payment := MapPaymentStatus(financial)

	switch normalizeStatus(fulfillment) {
	case "fulfilled":
		return entities.OrderStatusDelivered, payment
	case "shipped", "partial":
		return entities.OrderStatusShipped, payment
	}

	switch normalizeStatus(financial) {
	case "paid", "partially_paid", "partially_refunded":
		return entities.OrderStatusProcessing, payment
	case "refunded":
		return entities.OrderStatusRefunded, payment
	case "voided":
		return entities.OrderStatusCancelled, payment
	default:
		return entities.OrderStatusPending, payment
	}
}

func MapPaymentStatus(financial string) entities.PaymentStatus {
	switch normalizeStatus(financial) {
	case "paid":
		return entities.PaymentStatusPaid
	case "partially_paid":
		return entities.PaymentStatusPartiallyPaid
	case "refunded":
		return entities.PaymentStatusRefunded
	case "partially_refunded":
		return entities.PaymentStatusPartiallyRefunded
	case "voided":
		return entities.PaymentStatusVoided
	default:
		return entities.PaymentStatusPending
	}
}

// MapProductStatus reads the Status column, falling back to Published for
// older exports that have no status.
func MapProductStatus(status, published string) entities.ProductStatus {
	switch normalizeStatus(status) {
	case "active":
		return entities.ProductStatusActive
	case "draft":
		return entities.ProductStatusDraft
	case "archived":
		return entities.ProductStatusArchived
	}
	if !ParseBool(published, true) {
		return entities.ProductStatusDraft
	}
	return entities.ProductStatusActive
}

func MapDiscountType(s string) entities.DiscountType {
	switch normalizeStatus(s) {
	case "percentage", "percent", "%":
		return entities.DiscountTypePercentage
	case "free_shipping", "shipping":
		return entities.DiscountTypeFreeShipping
	default:
		return entities.DiscountTypeFixedAmount
	}
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
}

// ParseTimestamp reads the export's timestamp formats; nil when empty or unreadable.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
