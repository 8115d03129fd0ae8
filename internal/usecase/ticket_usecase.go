package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"repairdeck/internal/domain/entities"
	"repairdeck/internal/domain/pricing"
	"repairdeck/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTicketID    = errors.New("invalid ticket id")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrInvalidTicketInput = errors.New("invalid ticket input")
	ErrInvalidStatus      = errors.New("invalid ticket status")
	ErrInvoiceRequired    = errors.New("an invoice must be created and paid before this ticket can be completed")
)

// BalanceDueError rejects a Completed transition while the linked invoice
// carries a balance. It keeps the invoice id and amount so the caller can
// show exactly what is outstanding.
type BalanceDueError struct {
	InvoiceID string
	Amount    float64
}

func (e *BalanceDueError) Error() string {
	return fmt.Sprintf("invoice %s has an outstanding balance of %s", e.InvoiceID, pricing.FormatUSD(e.Amount))
}

// ITicketUseCase exposes ticket lifecycle operations, most notably the
// guarded status transition.
type ITicketUseCase interface {
	CreateTicket(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	UpdateStatus(ctx context.Context, id string, newStatus entities.TicketStatus) (entities.Ticket, error)
}

type TicketUseCase struct {
	tickets  interfaces.ITicketRepository
	invoices interfaces.IInvoiceRepository
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(tickets interfaces.ITicketRepository, invoices interfaces.IInvoiceRepository) *TicketUseCase {
	return &TicketUseCase{tickets: tickets, invoices: invoices}
}

func (u *TicketUseCase) CreateTicket(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	t.CustomerName = strings.TrimSpace(t.CustomerName)
	t.Vehicle = strings.TrimSpace(t.Vehicle)
	if t.CustomerName == "" || t.Vehicle == "" {
		return entities.Ticket{}, ErrInvalidTicketInput
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.Status = entities.TicketStatusNew
	t.InvoiceID = ""
	t.Cost = 0
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.tickets.Create(ctx, t)
}

func (u *TicketUseCase) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}

	t, err := u.tickets.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

// UpdateStatus moves a ticket through its status machine.
//
// Non-terminal states transition freely and Cancelled is always reachable.
// Completed is guarded: a linked invoice must be Paid, and a ticket with a
// non-zero cost but no invoice cannot complete at all. A Completed ticket may
// be reopened to any other state (refund/rework); the guard only covers the
// way in. Successful transitions record a fresh updated-at timestamp.
func (u *TicketUseCase) UpdateStatus(ctx context.Context, id string, newStatus entities.TicketStatus) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}
	if !newStatus.Valid() {
		return entities.Ticket{}, ErrInvalidStatus
	}

	t, err := u.tickets.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}

	if newStatus == entities.TicketStatusCompleted {
		if t.InvoiceID != "" {
			inv, err := u.invoices.GetByID(ctx, t.InvoiceID)
			if err != nil {
				return entities.Ticket{}, err
			}
			if inv.ID == "" {
				return entities.Ticket{}, ErrInvoiceNotFound
			}
			if inv.Status != entities.InvoiceStatusPaid {
				return entities.Ticket{}, &BalanceDueError{InvoiceID: inv.ID, Amount: inv.Amount}
			}
		} else if t.Cost > 0 {
			return entities.Ticket{}, ErrInvoiceRequired
		}
	}

	updated, err := u.tickets.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return entities.Ticket{}, err
	}
	if updated.ID == "" {
		// The ticket vanished between the read above and the conditional update.
		return entities.Ticket{}, ErrTicketNotFound
	}
	return updated, nil
}
