package interfaces

import (
	"context"

	"repairdeck/internal/domain/entities"
)

// ITicketRepository abstracts DynamoDB persistence for Ticket.
//
// The workflow needs to:
//   - create and load tickets
//   - move a ticket through its status machine
//   - refresh the tracked cost when an estimate is saved
//   - link the ticket to its invoice once one is created
type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error)
	SetCost(ctx context.Context, id string, cost float64) (entities.Ticket, error)
	LinkInvoice(ctx context.Context, id, invoiceID string, cost float64) (entities.Ticket, error)
}
