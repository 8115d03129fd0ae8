package response

import (
	"time"

	"repairdeck/internal/domain/entities"
	"repairdeck/internal/domain/pricing"
)

// EstimateResponse renders an estimate for the editor. Monetary fields carry
// the full-precision values; the *Display fields are the rounded strings the
// UI shows, so rounding stays at this edge only.
type EstimateResponse struct {
	ID              string             `json:"id"`
	TicketID        string             `json:"ticket_id"`
	LineItems       entities.LineItems `json:"line_items"`
	Subtotal        float64            `json:"subtotal"`
	Tax             float64            `json:"tax"`
	Total           float64            `json:"total"`
	SubtotalDisplay string             `json:"subtotal_display"`
	TaxDisplay      string             `json:"tax_display"`
	TotalDisplay    string             `json:"total_display"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:              e.ID,
		TicketID:        e.TicketID,
		LineItems:       e.LineItems,
		Subtotal:        e.Subtotal,
		Tax:             e.Tax,
		Total:           e.Total,
		SubtotalDisplay: pricing.FormatUSD(e.Subtotal),
		TaxDisplay:      pricing.FormatUSD(e.Tax),
		TotalDisplay:    pricing.FormatUSD(e.Total),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
