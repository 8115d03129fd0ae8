package response

import (
	"time"

	"repairdeck/internal/domain/entities"
)

type TicketResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Vehicle      string          `json:"vehicle"`
	Issue        string          `json:"issue"`
	Status       string          `json:"status"`
	Notes        []entities.Note `json:"notes,omitempty"`
	InvoiceID    string          `json:"invoice_id,omitempty"`
	Cost         float64         `json:"cost"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		CustomerID:   t.CustomerID,
		CustomerName: t.CustomerName,
		Vehicle:      t.Vehicle,
		Issue:        t.Issue,
		Status:       string(t.Status),
		Notes:        t.Notes,
		InvoiceID:    t.InvoiceID,
		Cost:         t.Cost,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
