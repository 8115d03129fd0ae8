package entities

// TaxConfig holds the company tax percentages applied to every estimate and
// invoice. Rates are read once per editing session; an absent rate counts
// as zero.
type TaxConfig struct {
	SalesTaxRate float64 `json:"sales_tax_rate"`
	LocalTaxRate float64 `json:"local_tax_rate"`
}

// CompanySettings is the single settings record for the shop.
//
// Storage model (DynamoDB):
//   - PK: id (fixed value "company")
type CompanySettings struct {
	ID           string  `json:"id"`
	Name         string  `json:"name,omitempty"`
	SalesTaxRate float64 `json:"sales_tax_rate"`
	LocalTaxRate float64 `json:"local_tax_rate"`
}

func (s CompanySettings) TaxConfig() TaxConfig {
	return TaxConfig{SalesTaxRate: s.SalesTaxRate, LocalTaxRate: s.LocalTaxRate}
}
