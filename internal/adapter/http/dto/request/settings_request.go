package request

type UpdateTaxRatesRequest struct {
	SalesTaxRate float64 `json:"sales_tax_rate"`
	LocalTaxRate float64 `json:"local_tax_rate"`
}
