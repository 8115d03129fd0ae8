package entities

import "time"

// TicketStatus is the workflow state of a repair ticket.
type TicketStatus string

const (
	TicketStatusNew           TicketStatus = "New"
	TicketStatusInProgress    TicketStatus = "In Progress"
	TicketStatusAwaitingParts TicketStatus = "Awaiting Parts"
	TicketStatusCompleted     TicketStatus = "Completed"
	TicketStatusCancelled     TicketStatus = "Cancelled"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusNew, TicketStatusInProgress, TicketStatusAwaitingParts,
		TicketStatusCompleted, TicketStatusCancelled:
		return true
	}
	return false
}

// Note is a staff annotation on a ticket. Customer-viewable notes can be
// copied onto an invoice when it is created.
type Note struct {
	Author             string `json:"author"`
	Date               string `json:"date"`
	Note               string `json:"note"`
	IsCustomerViewable bool   `json:"is_customer_viewable"`
}

// Ticket is a repair job. Cost tracks the latest estimate total (or the
// invoice amount once one exists) and drives the Completed-transition guard
// when no invoice has been created yet.
//
// Storage model (DynamoDB):
//   - PK: id
type Ticket struct {
	ID           string       `json:"id"`
	CustomerID   string       `json:"customer_id"`
	CustomerName string       `json:"customer_name"`
	Vehicle      string       `json:"vehicle"`
	Issue        string       `json:"issue"`
	Status       TicketStatus `json:"status"`
	Notes        []Note       `json:"notes,omitempty"`
	InvoiceID    string       `json:"invoice_id,omitempty"`
	Cost         float64      `json:"cost"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// CustomerViewableNotes returns the note texts flagged for the customer,
// in the order they were added.
func (t Ticket) CustomerViewableNotes() []string {
	var out []string
	for _, n := range t.Notes {
		if n.IsCustomerViewable {
			out = append(out, n.Note)
		}
	}
	return out
}
