package importers

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRows_ContinuationRows(t *testing.T) {
	rows := []RawRow{
		{"Name": "#1001", "Lineitem name": "A"},
		{"Name": "", "Lineitem name": "B"},
		{"Name": "#1002", "Lineitem name": "C"},
		{"Name": "", "Lineitem name": "D"},
		{"Name": "", "Lineitem name": "E"},
	}

	groups := GroupRows(rows, "Name", nil)

	require.Len(t, groups, 2)
	assert.Equal(t, "#1001", groups[0].Key)
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "#1002", groups[1].Key)
	assert.Len(t, groups[1].Rows, 3)
	assert.Equal(t, "E", groups[1].Rows[2].Get("Lineitem name"))
}

func TestGroupRows_LeadingContinuationDropped(t *testing.T) {
	rows := []RawRow{
		{"Handle": "", "Title": "orphan"},
		{"Handle": "candle-a", "Title": "Candle A"},
	}

	groups := GroupRows(rows, "Handle", nil)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Rows, 1)
	assert.Equal(t, "Candle A", groups[0].Rows[0].Get("Title"))
}

func TestGroupRows_RepeatedKeyJoinsExistingGroup(t *testing.T) {
	rows := []RawRow{
		{"Handle": "candle-a", "Variant SKU": "A1"},
		{"Handle": "candle-b", "Variant SKU": "B1"},
		{"Handle": "candle-a", "Variant SKU": "A2"},
		{"Handle": "", "Variant SKU": "A3"},
	}

	groups := GroupRows(rows, "Handle", nil)

	require.Len(t, groups, 2)
	assert.Equal(t, "candle-a", groups[0].Key)
	require.Len(t, groups[0].Rows, 3)
	assert.Equal(t, "A3", groups[0].Rows[2].Get("Variant SKU"))
	assert.Len(t, groups[1].Rows, 1)
}

func TestGroupRows_NormalizedKey(t *testing.T) {
	rows := []RawRow{
		{"Email": "Jane@Example.com"},
		{"Email": "jane@example.com "},
	}

	groups := GroupRows(rows, "Email", NormalizeEmail)

	require.Len(t, groups, 1)
	assert.Equal(t, "jane@example.com", groups[0].Key)
	assert.Len(t, groups[0].Rows, 2)
}

func TestGroupRows_Empty(t *testing.T) {
	assert.Empty(t, GroupRows(nil, "Handle", nil))
}

func TestMergePolicy_Strategies(t *testing.T) {
	policy := MergePolicy{
		{Field: "title", Columns: []string{"Title"}, Strategy: MergeFirst},
		{Field: "compare", Columns: []string{"Compare"}, Strategy: MergeAnchored, Anchor: "price"},
		{Field: "price", Columns: []string{"Price"}, Strategy: MergeFirstPositive},
	}
	rows := []RawRow{
		{"Title": "First", "Price": "0", "Compare": "1.00"},
		{"Title": "Second", "Price": "12.50", "Compare": "20.00"},
		{"Title": "Third", "Price": "15.00", "Compare": "25.00"},
	}

	fields := policy.Merge(rows)

	assert.Equal(t, "First", fields.Get("title"))
	assert.Equal(t, "12.50", fields.Get("price"))
	assert.Equal(t, "20.00", fields.Get("compare"))
}

func TestMergePolicy_FirstWinsEvenWhenEmpty(t *testing.T) {
	policy := MergePolicy{{Field: "vendor", Columns: []string{"Vendor"}, Strategy: MergeFirst}}
	rows := []RawRow{{"Vendor": ""}, {"Vendor": "Late Vendor"}}

	assert.Equal(t, "", policy.Merge(rows).Get("vendor"))
}

func TestMergePolicy_NoPositiveValue(t *testing.T) {
	policy := MergePolicy{
		{Field: "price", Columns: []string{"Price"}, Strategy: MergeFirstPositive},
		{Field: "compare", Columns: []string{"Compare"}, Strategy: MergeAnchored, Anchor: "price"},
	}
	rows := []RawRow{{"Price": "0", "Compare": "9"}, {"Price": "abc"}}

	fields := policy.Merge(rows)

	_, hasPrice := fields["price"]
	_, hasCompare := fields["compare"]
	assert.False(t, hasPrice)
	assert.False(t, hasCompare)
}

func TestBuildProducts_CandleScenario(t *testing.T) {
	input := "Handle,Title,Variant Price,Option1 Value\n" +
		"candle-a,Candle A,10.00,8 oz\n" +
		",,15.00,16 oz\n" +
		"candle-b,Candle B,5.00,\n"

	rows, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	products := BuildProducts(rows)

	require.Len(t, products, 2)

	a := products[0]
	assert.Equal(t, "candle-a", a.Handle)
	assert.Equal(t, "Candle A", a.Title)
	require.Len(t, a.Variants, 2)
	assert.True(t, decimal.RequireFromString("10.00").Equal(a.Variants[0].Price))
	assert.True(t, decimal.RequireFromString("15.00").Equal(a.Variants[1].Price))
	assert.True(t, decimal.RequireFromString("10.00").Equal(a.Price))
	assert.Equal(t, "8 oz", a.Variants[0].Title)
	assert.Equal(t, 1, a.Variants[0].Position)
	assert.Equal(t, 2, a.Variants[1].Position)

	b := products[1]
	assert.Equal(t, "candle-b", b.Handle)
	require.Len(t, b.Variants, 1)
	assert.True(t, decimal.RequireFromString("5.00").Equal(b.Variants[0].Price))
	assert.True(t, decimal.RequireFromString("5.00").Equal(b.Price))
	assert.Equal(t, DefaultVariantTitle, b.Variants[0].Title)
}

func TestBuildProducts_NaNNumericCellsBecomeZero(t *testing.T) {
	rows := []RawRow{
		{"Handle": "candle-a", "Title": "Candle A", "Variant Price": "10.00", "Variant Grams": "NaN", "Variant Inventory Qty": "NaN"},
		{"Handle": "", "Variant Price": "12.00", "Variant Grams": "Inf", "Variant Inventory Qty": "1e30"},
	}

	products := BuildProducts(rows)

	require.Len(t, products, 1)
	require.Len(t, products[0].Variants, 2)
	for _, v := range products[0].Variants {
		assert.Zero(t, v.WeightOz)
		assert.Zero(t, v.InventoryQuantity)
	}
}

func TestBuildProducts_BasePriceFromFirstPositiveVariant(t *testing.T) {
	rows := []RawRow{
		{"Handle": "gift-box", "Title": "Gift Box", "Variant Price": "0.00", "Variant Compare At Price": "5.00", "Variant SKU": "GB-0"},
		{"Handle": "", "Variant Price": "24.00", "Variant Compare At Price": "30.00", "Variant SKU": "GB-1"},
	}

	products := BuildProducts(rows)

	require.Len(t, products, 1)
	assert.True(t, decimal.NewFromInt(24).Equal(products[0].Price))
	assert.True(t, decimal.NewFromInt(30).Equal(products[0].CompareAtPrice))
}

func TestBuildProducts_ImagesDeduplicatedByURL(t *testing.T) {
	rows := []RawRow{
		{"Handle": "candle-a", "Title": "Candle A", "Variant Price": "10", "Image Src": "https://cdn/a.jpg", "Image Position": "1"},
		{"Handle": "", "Variant Price": "12", "Image Src": "https://cdn/a.jpg"},
		{"Handle": "", "Image Src": "https://cdn/b.jpg", "Image Alt Text": "Side"},
	}

	products := BuildProducts(rows)

	require.Len(t, products, 1)
	p := products[0]
	assert.Len(t, p.Variants, 2, "image-only rows do not create variants")
	require.Len(t, p.Images, 2)
	assert.Equal(t, "https://cdn/a.jpg", p.Images[0].URL)
	assert.Equal(t, "https://cdn/b.jpg", p.Images[1].URL)
	assert.Equal(t, "Side", p.Images[1].AltText)
	assert.Equal(t, 2, p.Images[1].Position)
}

func TestBuildProducts_VariantFields(t *testing.T) {
	rows := []RawRow{{
		"Handle":                    "candle-a",
		"Title":                     "Candle A",
		"Tags":                      "soy, gift, ,",
		"Status":                    "draft",
		"Option1 Value":             "Large",
		"Option2 Value":             "Lavender",
		"Variant SKU":               "CA-L",
		"Variant Grams":             "453.6",
		"Variant Inventory Qty":     "7",
		"Variant Price":             "$1,250.50",
		"Variant Requires Shipping": "FALSE",
		"Variant Taxable":           "",
	}}

	products := BuildProducts(rows)

	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, []string{"soy", "gift"}, []string(p.Tags))
	assert.EqualValues(t, "draft", p.Status)

	v := p.Variants[0]
	assert.Equal(t, "Large / Lavender", v.Title)
	assert.Equal(t, "CA-L", v.SKU)
	assert.InDelta(t, 16.0, v.WeightOz, 0.01)
	assert.Equal(t, 7, v.InventoryQuantity)
	assert.True(t, decimal.RequireFromString("1250.50").Equal(v.Price))
	assert.False(t, v.RequiresShipping)
	assert.True(t, v.Taxable)
}

func TestBuildOrders_LineItems(t *testing.T) {
	rows := []RawRow{
		{
			"Name": "#1001", "Email": "Jane@Example.com", "Financial Status": "paid", "Fulfillment Status": "fulfilled",
			"Total": "42.00", "Created at": "2023-05-01 10:00:00 -0400",
			"Lineitem name": "Candle A - 8 oz", "Lineitem quantity": "2", "Lineitem price": "10.00", "Lineitem sku": "CA-8",
		},
		{"Name": "", "Lineitem name": "Candle B", "Lineitem quantity": "1", "Lineitem price": "22.00"},
		{"Name": "", "Lineitem name": ""},
	}

	orders := BuildOrders(rows)

	require.Len(t, orders, 1)
	o := orders[0]
	assert.Equal(t, "#1001", o.OrderNumber)
	assert.Equal(t, "jane@example.com", o.CustomerEmail)
	assert.EqualValues(t, "delivered", o.Status)
	assert.EqualValues(t, "paid", o.PaymentStatus)
	require.NotNil(t, o.PlacedAt)
	assert.Equal(t, 2023, o.PlacedAt.Year())
	require.Len(t, o.Items, 2)
	assert.Equal(t, "CA-8", o.Items[0].SKU)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, 2, o.Items[1].Position)
}

func TestBuildCustomers_FallbackColumns(t *testing.T) {
	rows := []RawRow{
		{"Email": "JANE@example.com", "First Name": "Jane", "Last Name": "Doe", "Default Address City": "Portland", "Accepts Email Marketing": "yes", "Total Spent": "120.50"},
		{"Email": "bob@example.com", "City": "Austin", "Accepts Marketing": "no"},
		{"Email": "", "First Name": "Nobody"},
	}

	customers := BuildCustomers(rows)

	require.Len(t, customers, 2)
	assert.Equal(t, "jane@example.com", customers[0].Email)
	assert.Equal(t, "Portland", customers[0].City)
	assert.True(t, customers[0].AcceptsMarketing)
	assert.True(t, decimal.RequireFromString("120.50").Equal(customers[0].TotalSpent))
	assert.Equal(t, "Austin", customers[1].City)
	assert.False(t, customers[1].AcceptsMarketing)
}

func TestBuildDiscounts(t *testing.T) {
	rows := []RawRow{
		{"Name": "WELCOME10", "Value": "-10.0", "Value Type": "percentage", "Times Used": "4", "Status": "Active"},
		{"Name": "FIVEOFF", "Value": "-5.00", "Value Type": "fixed_amount", "Status": "Expired", "Ends": "2023-01-31"},
	}

	discounts := BuildDiscounts(rows)

	require.Len(t, discounts, 2)
	assert.Equal(t, "WELCOME10", discounts[0].Code)
	assert.EqualValues(t, "percentage", discounts[0].Type)
	assert.True(t, decimal.NewFromInt(10).Equal(discounts[0].Value))
	assert.Equal(t, 4, discounts[0].TimesUsed)
	assert.True(t, discounts[0].Active)
	assert.False(t, discounts[1].Active)
	require.NotNil(t, discounts[1].EndsAt)
}
