package entities

import "time"

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
)

// Invoice is a billable document created from an estimate or from scratch.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ticket_id-index): ticket_id
//
// Amount always equals subtotal+tax of LineItems at save time. Once status is
// Paid the workflow treats the invoice as settled: it is what unblocks the
// ticket's Completed transition.
type Invoice struct {
	ID           string        `json:"id"`
	TicketID     string        `json:"ticket_id"`
	CustomerID   string        `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	Date         string        `json:"date"`
	DueDate      string        `json:"due_date"`
	LineItems    LineItems     `json:"line_items"`
	Amount       float64       `json:"amount"`
	Status       InvoiceStatus `json:"status"`
	Notes        []string      `json:"notes,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
