package importers

import (
	"strings"

	"github.com/mrlokans/storefront/internal/entities"
)

var customerPolicy = MergePolicy{
	{Field: ColFirstName, Columns: []string{ColFirstName}, Strategy: MergeFirst},
	{Field: ColLastName, Columns: []string{ColLastName}, Strategy: MergeFirst},
	{Field: ColPhone, Columns: []string{ColPhone, ColDefaultPhone}, Strategy: MergeFirst},
	{Field: ColCompany, Columns: []string{ColDefaultCompany, ColCompany}, Strategy: MergeFirst},
	{Field: ColAddress1, Columns: []string{ColDefaultAddress1, ColAddress1}, Strategy: MergeFirst},
	{Field: ColAddress2, Columns: []string{ColDefaultAddress2, ColAddress2}, Strategy: MergeFirst},
	{Field: ColCity, Columns: []string{ColDefaultCity, ColCity}, Strategy: MergeFirst},
	{Field: ColProvince, Columns: []string{ColDefaultProvinceCode, ColProvinceCode, ColProvince}, Strategy: MergeFirst},
	{Field: ColCountry, Columns: []string{ColDefaultCountryCode, ColCountryCode, ColCountry}, Strategy: MergeFirst},
	{Field: ColZip, Columns: []string{ColDefaultZip, ColZip}, Strategy: MergeFirst},
	{Field: ColAcceptsMarketing, Columns: []string{ColAcceptsEmailMarketing, ColAcceptsMarketing}, Strategy: MergeFirst},
	{Field: ColTaxExempt, Columns: []string{ColTaxExempt}, Strategy: MergeFirst},
	{Field: ColTotalSpent, Columns: []string{ColTotalSpent}, Strategy: MergeFirst},
	{Field: ColTotalOrders, Columns: []string{ColTotalOrders}, Strategy: MergeFirst},
	{Field: ColTags, Columns: []string{ColTags}, Strategy: MergeFirst},
	{Field: ColNote, Columns: []string{ColNote}, Strategy: MergeFirst},
}

// NormalizeEmail is the customer natural key form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BuildCustomers groups customer export rows by email. Rows without an email
// are skipped.
func BuildCustomers(rows []RawRow) []*entities.Customer {
	groups := GroupRows(rows, ColEmail, NormalizeEmail)
	customers := make([]*entities.Customer, 0, len(groups))
	for _, g := range groups {
		f := customerPolicy.Merge(g.Rows)
		customers = append(customers, &entities.Customer{
			Email:            Truncate(g.Key, entities.EmailMaxLen),
			FirstName:        Truncate(f.Get(ColFirstName), entities.NameMaxLen),
			LastName:         Truncate(f.Get(ColLastName), entities.NameMaxLen),
			Phone:            Truncate(f.Get(ColPhone), entities.PhoneMaxLen),
			Company:          Truncate(f.Get(ColCompany), entities.CompanyMaxLen),
			Address1:         Truncate(f.Get(ColAddress1), entities.AddressMaxLen),
			Address2:         Truncate(f.Get(ColAddress2), entities.AddressMaxLen),
			City:             Truncate(f.Get(ColCity), entities.CityMaxLen),
			Province:         Truncate(f.Get(ColProvince), entities.RegionMaxLen),
			Zip:              Truncate(f.Get(ColZip), entities.ZipMaxLen),
			Country:          Truncate(f.Get(ColCountry), entities.CountryMaxLen),
			AcceptsMarketing: ParseBool(f.Get(ColAcceptsMarketing), false),
			TaxExempt:        ParseBool(f.Get(ColTaxExempt), false),
			TotalSpent:       ParseMoney(f.Get(ColTotalSpent)),
			TotalOrders:      ParseQuantity(f.Get(ColTotalOrders)),
			Tags:             SplitTags(f.Get(ColTags)),
			Note:             f.Get(ColNote),
		})
	}
	return customers
}
