package importers

import (
	"github.com/mrlokans/storefront/internal/entities"
)

var discountPolicy = MergePolicy{
	{Field: ColValue, Columns: []string{ColValue}, Strategy: MergeFirst},
	{Field: ColValueType, Columns: []string{ColValueType}, Strategy: MergeFirst},
	{Field: ColMinimumSubtotal, Columns: []string{ColMinimumSubtotal, ColMinimumPurchase}, Strategy: MergeFirst},
	{Field: ColUsageLimit, Columns: []string{ColUsageLimitCode, ColUsageLimit}, Strategy: MergeFirst},
	{Field: ColTimesUsed, Columns: []string{ColTimesUsed}, Strategy: MergeFirst},
	{Field: ColStarts, Columns: []string{ColStarts, ColStartDate}, Strategy: MergeFirst},
	{Field: ColEnds, Columns: []string{ColEnds, ColEndDate}, Strategy: MergeFirst},
	{Field: ColStatus, Columns: []string{ColStatus}, Strategy: MergeFirst},
}

// BuildDiscounts groups discount export rows by code. Exports that predate
// the Code column carry the code in Name.
func BuildDiscounts(rows []RawRow) []*entities.DiscountCode {
	keyColumn := ColCode
	if len(rows) > 0 && !rows[0].Has(ColCode) {
		keyColumn = ColOrderName
	}

	groups := GroupRows(rows, keyColumn, nil)
	discounts := make([]*entities.DiscountCode, 0, len(groups))
	for _, g := range groups {
		f := discountPolicy.Merge(g.Rows)
		discounts = append(discounts, &entities.DiscountCode{
			Code:            Truncate(g.Key, entities.DiscountCodeMaxLen),
			Type:            MapDiscountType(f.Get(ColValueType)),
			Value:           ParseMoney(f.Get(ColValue)).Abs(),
			MinimumSubtotal: ParseMoney(f.Get(ColMinimumSubtotal)).Abs(),
			UsageLimit:      ParseQuantity(f.Get(ColUsageLimit)),
			TimesUsed:       ParseQuantity(f.Get(ColTimesUsed)),
			Active:          discountActive(f.Get(ColStatus)),
			StartsAt:        ParseTimestamp(f.Get(ColStarts)),
			EndsAt:          ParseTimestamp(f.Get(ColEnds)),
		})
	}
	return discounts
}

// discountActive treats a missing status as active.
func discountActive(status string) bool {
	switch normalizeStatus(status) {
	case "expired", "disabled", "inactive", "scheduled":
		return false
	default:
		return true
	}
}
