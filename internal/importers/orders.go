package importers

import (
	"github.com/mrlokans/storefront/internal/entities"
)

var orderPolicy = MergePolicy{
	{Field: ColEmail, Columns: []string{ColEmail}, Strategy: MergeFirst},
	{Field: ColFinancialStatus, Columns: []string{ColFinancialStatus}, Strategy: MergeFirst},
	{Field: ColFulfillmentStatus, Columns: []string{ColFulfillmentStatus}, Strategy: MergeFirst},
	{Field: ColCurrency, Columns: []string{ColCurrency}, Strategy: MergeFirst},
	{Field: ColSubtotal, Columns: []string{ColSubtotal}, Strategy: MergeFirst},
	{Field: ColShipping, Columns: []string{ColShipping}, Strategy: MergeFirst},
	{Field: ColTaxes, Columns: []string{ColTaxes}, Strategy: MergeFirst},
	{Field: ColTotal, Columns: []string{ColTotal}, Strategy: MergeFirst},
	{Field: ColDiscountCode, Columns: []string{ColDiscountCode}, Strategy: MergeFirst},
	{Field: ColDiscountAmount, Columns: []string{ColDiscountAmount}, Strategy: MergeFirst},
	{Field: ColShippingMethod, Columns: []string{ColShippingMethod}, Strategy: MergeFirst},
	{Field: ColShippingName, Columns: []string{ColShippingName}, Strategy: MergeFirst},
	{Field: ColShippingPhone, Columns: []string{ColShippingPhone}, Strategy: MergeFirst},
	{Field: ColShippingAddress1, Columns: []string{ColShippingAddress1}, Strategy: MergeFirst},
	{Field: ColShippingAddress2, Columns: []string{ColShippingAddress2}, Strategy: MergeFirst},
	{Field: ColShippingCity, Columns: []string{ColShippingCity}, Strategy: MergeFirst},
	{Field: ColShippingProvince, Columns: []string{ColShippingProvince}, Strategy: MergeFirst},
	{Field: ColShippingZip, Columns: []string{ColShippingZip}, Strategy: MergeFirst},
	{Field: ColShippingCountry, Columns: []string{ColShippingCountry}, Strategy: MergeFirst},
	{Field: ColNotes, Columns: []string{ColNotes}, Strategy: MergeFirst},
	{Field: ColCreatedAt, Columns: []string{ColCreatedAt}, Strategy: MergeFirst},
	{Field: ColPaidAt, Columns: []string{ColPaidAt}, Strategy: MergeFirst},
	{Field: ColFulfilledAt, Columns: []string{ColFulfilledAt}, Strategy: MergeFirst},
	{Field: ColCancelledAt, Columns: []string{ColCancelledAt}, Strategy: MergeFirst},
}

// BuildOrders groups order export rows by order name ("#1001") and collects
// one line item per row that names a product. Product and customer links are
// resolved later by the Writer.
func BuildOrders(rows []RawRow) []*entities.Order {
	groups := GroupRows(rows, ColOrderName, nil)
	orders := make([]*entities.Order, 0, len(groups))
	for _, g := range groups {
		orders = append(orders, buildOrder(g))
	}
	return orders
}

func buildOrder(g RowGroup) *entities.Order {
	f := orderPolicy.Merge(g.Rows)
	status, payment := MapOrderStatus(f.Get(ColFinancialStatus), f.Get(ColFulfillmentStatus))

	order := &entities.Order{
		OrderNumber:    Truncate(g.Key, entities.OrderNumberMaxLen),
		CustomerEmail:  Truncate(NormalizeEmail(f.Get(ColEmail)), entities.EmailMaxLen),
		Status:         status,
		PaymentStatus:  payment,
		Currency:       Truncate(f.Get(ColCurrency), entities.CurrencyMaxLen),
		Subtotal:       ParseMoney(f.Get(ColSubtotal)),
		ShippingCost:   ParseMoney(f.Get(ColShipping)),
		Tax:            ParseMoney(f.Get(ColTaxes)),
		DiscountAmount: ParseMoney(f.Get(ColDiscountAmount)).Abs(),
		Total:          ParseMoney(f.Get(ColTotal)),
		DiscountCode:   Truncate(f.Get(ColDiscountCode), entities.DiscountCodeMaxLen),
		ShippingMethod: Truncate(f.Get(ColShippingMethod), entities.ShippingMethodMaxLen),
		ShippingName:   Truncate(f.Get(ColShippingName), entities.NameMaxLen),
		ShippingPhone:  Truncate(f.Get(ColShippingPhone), entities.PhoneMaxLen),
		Address1:       Truncate(f.Get(ColShippingAddress1), entities.AddressMaxLen),
		Address2:       Truncate(f.Get(ColShippingAddress2), entities.AddressMaxLen),
		City:           Truncate(f.Get(ColShippingCity), entities.CityMaxLen),
		Province:       Truncate(f.Get(ColShippingProvince), entities.RegionMaxLen),
		Zip:            Truncate(f.Get(ColShippingZip), entities.ZipMaxLen),
		Country:        Truncate(f.Get(ColShippingCountry), entities.CountryMaxLen),
		Notes:          f.Get(ColNotes),
		PlacedAt:       ParseTimestamp(f.Get(ColCreatedAt)),
		PaidAt:         ParseTimestamp(f.Get(ColPaidAt)),
		FulfilledAt:    ParseTimestamp(f.Get(ColFulfilledAt)),
		CancelledAt:    ParseTimestamp(f.Get(ColCancelledAt)),
	}

	for _, row := range g.Rows {
		name := row.Get(ColLineitemName)
		if name == "" {
			continue
		}
		order.Items = append(order.Items, entities.OrderItem{
			Name:             Truncate(name, entities.LineItemNameMaxLen),
			SKU:              Truncate(row.Get(ColLineitemSKU), entities.SKUMaxLen),
			Quantity:         ParseQuantity(row.Get(ColLineitemQuantity)),
			Price:            ParseMoney(row.Get(ColLineitemPrice)),
			RequiresShipping: ParseBool(row.Get(ColLineitemRequiresShipping), true),
			Position:         len(order.Items) + 1,
		})
	}

	return order
}
