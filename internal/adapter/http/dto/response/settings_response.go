package response

import "repairdeck/internal/domain/entities"

type SettingsResponse struct {
	SalesTaxRate        float64 `json:"sales_tax_rate"`
	LocalTaxRate        float64 `json:"local_tax_rate"`
	CombinedRatePercent float64 `json:"combined_rate_percent"`
}

func FromSettings(s entities.CompanySettings) SettingsResponse {
	return SettingsResponse{
		SalesTaxRate:        s.SalesTaxRate,
		LocalTaxRate:        s.LocalTaxRate,
		CombinedRatePercent: s.SalesTaxRate + s.LocalTaxRate,
	}
}
