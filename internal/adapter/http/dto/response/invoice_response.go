package response

import (
	"time"

	"repairdeck/internal/domain/entities"
	"repairdeck/internal/domain/pricing"
)

type InvoiceResponse struct {
	ID            string             `json:"id"`
	TicketID      string             `json:"ticket_id"`
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	Date          string             `json:"date"`
	DueDate       string             `json:"due_date"`
	LineItems     entities.LineItems `json:"line_items"`
	Amount        float64            `json:"amount"`
	AmountDisplay string             `json:"amount_display"`
	Status        string             `json:"status"`
	Notes         []string           `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		TicketID:      inv.TicketID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		LineItems:     inv.LineItems,
		Amount:        inv.Amount,
		AmountDisplay: pricing.FormatUSD(inv.Amount),
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
