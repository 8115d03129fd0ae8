package request

import "repairdeck/internal/domain/entities"

// LineItemRequest is one billable row as posted by the editor. ID is empty
// for rows the client created locally; the usecase assigns one on save.
type LineItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// ToLineItems converts the posted rows, applying the editor's default
// quantity of 1 to rows that omit it. Negative quantities are passed through
// so save-time validation can reject them.
func ToLineItems(rows []LineItemRequest) entities.LineItems {
	items := make(entities.LineItems, 0, len(rows))
	for _, r := range rows {
		qty := r.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, entities.LineItem{
			ID:          r.ID,
			Description: r.Description,
			UnitPrice:   r.UnitPrice,
			Quantity:    qty,
		})
	}
	return items
}
