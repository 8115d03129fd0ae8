// Package pricing holds the pure money math shared by the estimate and
// invoice editors: the subtotal/tax/total calculator and the unit-price
// change detector that decides whether a save needs admin sign-off.
package pricing

import (
	"fmt"
	"math"

	"repairdeck/internal/domain/entities"
)

// Totals is the computed breakdown for a set of line items.
type Totals struct {
	Subtotal            float64 `json:"subtotal"`
	Tax                 float64 `json:"tax"`
	Total               float64 `json:"total"`
	CombinedRatePercent float64 `json:"combined_rate_percent"`
}

// Compute derives the totals for the given line items and tax configuration.
//
// Subtotal is the unrounded sum of unit_price*quantity; the combined rate is
// (sales+local)/100 applied once to the subtotal. Nothing is rounded here —
// rounding belongs at the presentation edge (Round2/FormatUSD), so repeated
// edits never compound rounding error. Deterministic and side-effect free;
// an empty collection yields all zeros.
func Compute(items entities.LineItems, cfg entities.TaxConfig) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	combinedRate := (cfg.SalesTaxRate + cfg.LocalTaxRate) / 100
	tax := subtotal * combinedRate
	return Totals{
		Subtotal:            subtotal,
		Tax:                 tax,
		Total:               subtotal + tax,
		CombinedRatePercent: combinedRate * 100,
	}
}

// PricesChanged reports whether the candidate items differ from the saved
// original in a way that needs privileged approval. Only unit prices matter:
// a length difference, an item id missing from the original, or a changed
// unit price on a matched id all count. Edits to description or quantity
// alone never trigger it.
func PricesChanged(original, candidate entities.LineItems) bool {
	if len(candidate) != len(original) {
		return true
	}
	for _, item := range candidate {
		found := false
		for _, orig := range original {
			if orig.ID == item.ID {
				found = true
				if orig.UnitPrice != item.UnitPrice {
					return true
				}
				break
			}
		}
		if !found {
			return true
		}
	}
	return false
}

// Round2 rounds a monetary value to 2 decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatUSD renders a monetary value the way the UI shows it, e.g. "$140.39".
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
