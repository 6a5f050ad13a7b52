package importers

// Product export columns.
const (
	ColHandle                  = "Handle"
	ColTitle                   = "Title"
	ColBody                    = "Body (HTML)"
	ColVendor                  = "Vendor"
	ColType                    = "Type"
	ColTags                    = "Tags"
	ColPublished               = "Published"
	ColStatus                  = "Status"
	ColOption1Value            = "Option1 Value"
	ColOption2Value            = "Option2 Value"
	ColOption3Value            = "Option3 Value"
	ColVariantSKU              = "Variant SKU"
	ColVariantGrams            = "Variant Grams"
	ColVariantInventoryQty     = "Variant Inventory Qty"
	ColVariantPrice            = "Variant Price"
	ColVariantCompareAtPrice   = "Variant Compare At Price"
	ColVariantRequiresShipping = "Variant Requires Shipping"
	ColVariantTaxable          = "Variant Taxable"
	ColVariantBarcode          = "Variant Barcode"
	ColImageSrc                = "Image Src"
	ColImagePosition           = "Image Position"
	ColImageAltText            = "Image Alt Text"
)

// Customer export columns. Newer exports prefix address fields with "Default Address".
const (
	ColEmail                 = "Email"
	ColFirstName             = "First Name"
	ColLastName              = "Last Name"
	ColCompany               = "Company"
	ColDefaultCompany        = "Default Address Company"
	ColAddress1              = "Address1"
	ColDefaultAddress1       = "Default Address Address1"
	ColAddress2              = "Address2"
	ColDefaultAddress2       = "Default Address Address2"
	ColCity                  = "City"
	ColDefaultCity           = "Default Address City"
	ColProvince              = "Province"
	ColProvinceCode          = "Province Code"
	ColDefaultProvinceCode   = "Default Address Province Code"
	ColCountry               = "Country"
	ColCountryCode           = "Country Code"
	ColDefaultCountryCode    = "Default Address Country Code"
	ColZip                   = "Zip"
	ColDefaultZip            = "Default Address Zip"
	ColPhone                 = "Phone"
	ColDefaultPhone          = "Default Address Phone"
	ColAcceptsMarketing      = "Accepts Marketing"
	ColAcceptsEmailMarketing = "Accepts Email Marketing"
	ColTotalSpent            = "Total Spent"
	ColTotalOrders           = "Total Orders"
	ColNote                  = "Note"
	ColTaxExempt             = "Tax Exempt"
)

// Order export columns.
const (
	ColOrderName                = "Name"
	ColFinancialStatus          = "Financial Status"
	ColFulfillmentStatus        = "Fulfillment Status"
	ColPaidAt                   = "Paid at"
	ColFulfilledAt              = "Fulfilled at"
	ColCancelledAt              = "Cancelled at"
	ColCreatedAt                = "Created at"
	ColCurrency                 = "Currency"
	ColSubtotal                 = "Subtotal"
	ColShipping                 = "Shipping"
	ColTaxes                    = "Taxes"
	ColTotal                    = "Total"
	ColDiscountCode             = "Discount Code"
	ColDiscountAmount           = "Discount Amount"
	ColShippingMethod           = "Shipping Method"
	ColLineitemQuantity         = "Lineitem quantity"
	ColLineitemName             = "Lineitem name"
	ColLineitemPrice            = "Lineitem price"
	ColLineitemSKU              = "Lineitem sku"
	ColLineitemRequiresShipping = "Lineitem requires shipping"
	ColShippingName             = "Shipping Name"
	ColShippingAddress1         = "Shipping Address1"
	ColShippingAddress2         = "Shipping Address2"
	ColShippingCity             = "Shipping City"
	ColShippingZip              = "Shipping Zip"
	ColShippingProvince         = "Shipping Province"
	ColShippingCountry          = "Shipping Country"
	ColShippingPhone            = "Shipping Phone"
	ColNotes                    = "Notes"
)

// Discount export columns.
const (
	ColCode            = "Code"
	ColValue           = "Value"
	ColValueType       = "Value Type"
	ColMinimumPurchase = "Minimum Purchase Requirements"
	ColMinimumSubtotal = "Minimum Subtotal"
	ColUsageLimitCode  = "Usage Limit Per Code"
	ColUsageLimit      = "Usage Limit"
	ColTimesUsed       = "Times Used"
	ColStarts          = "Starts"
	ColStartDate       = "Start Date"
	ColEnds            = "Ends"
	ColEndDate         = "End Date"
)
