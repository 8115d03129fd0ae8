package entities

import "time"

// Estimate is the pre-invoice quote for a ticket.
//
// Storage model (DynamoDB):
//   - PK: ticket_id
//
// Using the ticket id as PK guarantees at most one live estimate per ticket;
// saving again replaces the previous one.
//
// Subtotal/Tax/Total are cached at save time for display but are always
// recomputable from LineItems plus the tax configuration — the cache is never
// treated as authoritative.
type Estimate struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	LineItems LineItems `json:"line_items"`
	Subtotal  float64   `json:"subtotal"`
	Tax       float64   `json:"tax"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
