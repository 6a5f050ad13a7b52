package importers

import (
	"strconv"

	"github.com/mrlokans/storefront/internal/entities"
)

// productPolicy folds product scalars. The base price comes from the first
// variant row with a positive price, and the compare-at price from that same row.
var productPolicy = MergePolicy{
	{Field: ColTitle, Columns: []string{ColTitle}, Strategy: MergeFirst},
	{Field: ColBody, Columns: []string{ColBody}, Strategy: MergeFirst},
	{Field: ColVendor, Columns: []string{ColVendor}, Strategy: MergeFirst},
	{Field: ColType, Columns: []string{ColType}, Strategy: MergeFirst},
	{Field: ColTags, Columns: []string{ColTags}, Strategy: MergeFirst},
	{Field: ColStatus, Columns: []string{ColStatus}, Strategy: MergeFirst},
	{Field: ColPublished, Columns: []string{ColPublished}, Strategy: MergeFirst},
	{Field: ColVariantPrice, Columns: []string{ColVariantPrice}, Strategy: MergeFirstPositive},
	{Field: ColVariantCompareAtPrice, Columns: []string{ColVariantCompareAtPrice}, Strategy: MergeAnchored, Anchor: ColVariantPrice},
}

// BuildProducts groups product export rows by handle and maps each group to
// a product with its variants and images.
func BuildProducts(rows []RawRow) []*entities.Product {
	groups := GroupRows(rows, ColHandle, nil)
	products := make([]*entities.Product, 0, len(groups))
	for _, g := range groups {
		products = append(products, buildProduct(g))
	}
	return products
}

func buildProduct(g RowGroup) *entities.Product {
	f := productPolicy.Merge(g.Rows)

	product := &entities.Product{
		Handle:         Truncate(g.Key, entities.HandleMaxLen),
		Title:          Truncate(f.Get(ColTitle), entities.TitleMaxLen),
		Description:    f.Get(ColBody),
		Vendor:         Truncate(f.Get(ColVendor), entities.VendorMaxLen),
		ProductType:    Truncate(f.Get(ColType), entities.ProductTypeMaxLen),
		Tags:           SplitTags(f.Get(ColTags)),
		Status:         MapProductStatus(f.Get(ColStatus), f.Get(ColPublished)),
		Price:          ParseMoney(f.Get(ColVariantPrice)),
		CompareAtPrice: ParseMoney(f.Get(ColVariantCompareAtPrice)),
	}

	seenImages := make(map[string]bool)
	for _, row := range g.Rows {
		if isVariantRow(row) {
			product.Variants = append(product.Variants, buildVariant(row, len(product.Variants)+1))
		}

		src := row.Get(ColImageSrc)
		if src == "" || seenImages[src] {
			continue
		}
		seenImages[src] = true
		product.Images = append(product.Images, buildImage(row, len(product.Images)+1))
	}

	return product
}

// isVariantRow reports whether a row describes a variant rather than only an extra image.
func isVariantRow(row RawRow) bool {
	return row.Get(ColVariantPrice) != "" || row.Get(ColVariantSKU) != "" || row.Get(ColOption1Value) != ""
}

func buildVariant(row RawRow, position int) entities.ProductVariant {
	o1 := Truncate(row.Get(ColOption1Value), entities.OptionMaxLen)
	o2 := Truncate(row.Get(ColOption2Value), entities.OptionMaxLen)
	o3 := Truncate(row.Get(ColOption3Value), entities.OptionMaxLen)

	return entities.ProductVariant{
		Title:             Truncate(VariantTitle(o1, o2, o3), entities.TitleMaxLen),
		SKU:               Truncate(row.Get(ColVariantSKU), entities.SKUMaxLen),
		Barcode:           Truncate(row.Get(ColVariantBarcode), entities.BarcodeMaxLen),
		Option1:           o1,
		Option2:           o2,
		Option3:           o3,
		Price:             ParseMoney(row.Get(ColVariantPrice)),
		CompareAtPrice:    ParseMoney(row.Get(ColVariantCompareAtPrice)),
		InventoryQuantity: ParseQuantity(row.Get(ColVariantInventoryQty)),
		WeightOz:          GramsToOunces(ParseFloat(row.Get(ColVariantGrams))),
		RequiresShipping:  ParseBool(row.Get(ColVariantRequiresShipping), true),
		Taxable:           ParseBool(row.Get(ColVariantTaxable), true),
		Position:          position,
	}
}

func buildImage(row RawRow, fallbackPosition int) entities.ProductImage {
	position := fallbackPosition
	if p, err := strconv.Atoi(row.Get(ColImagePosition)); err == nil && p > 0 {
		position = p
	}
	return entities.ProductImage{
		URL:      Truncate(row.Get(ColImageSrc), entities.ImageURLMaxLen),
		AltText:  Truncate(row.Get(ColImageAltText), entities.AltTextMaxLen),
		Position: position,
	}
}
