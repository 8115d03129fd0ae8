package response

import (
	"testing"
	"time"

	"repairdeck/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:       "e-1",
		TicketID: "t-1",
		LineItems: entities.LineItems{
			{ID: "a", Description: "Brake pads", UnitPrice: 129.99, Quantity: 1},
		},
		Subtotal:  129.99,
		Tax:       10.3992,
		Total:     140.3892,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEstimate(e)
	if res.ID != "e-1" || res.TicketID != "t-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Subtotal != 129.99 || res.Tax != 10.3992 || res.Total != 140.3892 {
		t.Fatalf("expected full-precision values preserved: %+v", res)
	}
	if res.SubtotalDisplay != "$129.99" || res.TaxDisplay != "$10.40" || res.TotalDisplay != "$140.39" {
		t.Fatalf("unexpected display values: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
