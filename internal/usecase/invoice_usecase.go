package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"repairdeck/internal/domain/approval"
	"repairdeck/internal/domain/entities"
	"repairdeck/internal/domain/pricing"
	"repairdeck/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidInvoiceID   = errors.New("invalid invoice id")
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")

	// ErrApprovalRequired means the save changed unit prices, the actor is
	// not an Admin and no PIN was supplied: the caller must re-submit with
	// an admin PIN.
	ErrApprovalRequired = errors.New("admin approval required for price changes")
)

const invoiceDueDays = 30

// CreateInvoiceCommand carries everything an invoice save needs, including
// the actor's role and optional admin PIN for the approval gate.
type CreateInvoiceCommand struct {
	TicketID     string
	ActorRole    entities.EmployeeRole
	AdminPIN     string
	FromEstimate bool
	IncludeNotes bool

	// LineItems is the edited set when not importing from the estimate.
	LineItems entities.LineItems
}

// IInvoiceUseCase encapsulates invoice creation (with price-change approval
// gating) and payment recording.
type IInvoiceUseCase interface {
	CreateFromTicket(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	invoices  interfaces.IInvoiceRepository
	estimates interfaces.IEstimateRepository
	tickets   interfaces.ITicketRepository
	settings  interfaces.ISettingsRepository
	authz     approval.AuthorizationProvider
	gateway   interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoices interfaces.IInvoiceRepository,
	estimates interfaces.IEstimateRepository,
	tickets interfaces.ITicketRepository,
	settings interfaces.ISettingsRepository,
	authz approval.AuthorizationProvider,
	gateway interfaces.IPaymentGateway,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices:  invoices,
		estimates: estimates,
		tickets:   tickets,
		settings:  settings,
		authz:     authz,
		gateway:   gateway,
	}
}

// CreateFromTicket builds an invoice for a ticket, either importing the
// estimate's line items or taking a fresh set.
//
// The saved estimate is the snapshot the price-change detector diffs against.
// When unit prices changed and the actor is not an Admin, the save is parked
// behind the approval gate: no PIN means ErrApprovalRequired, a wrong PIN
// means approval.ErrPINRejected, and a correct PIN releases the save exactly
// once. On success the ticket is linked to the new invoice and its cost is
// set to the invoice amount.
func (u *InvoiceUseCase) CreateFromTicket(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error) {
	ticketID := strings.TrimSpace(cmd.TicketID)
	if ticketID == "" {
		return entities.Invoice{}, ErrInvalidTicketID
	}

	ticket, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if ticket.ID == "" {
		return entities.Invoice{}, ErrTicketNotFound
	}

	estimate, err := u.estimates.GetByTicketID(ctx, ticketID)
	if err != nil {
		return entities.Invoice{}, err
	}

	var items entities.LineItems
	if cmd.FromEstimate {
		if estimate.ID == "" {
			return entities.Invoice{}, ErrEstimateNotFound
		}
		items = estimate.LineItems.Clone()
	} else {
		items = cmd.LineItems.Clone()
		items.EnsureIDs()
	}
	if err := items.Validate(); err != nil {
		return entities.Invoice{}, err
	}

	var created entities.Invoice
	save := func() error {
		inv, err := u.persistInvoice(ctx, ticket, items, cmd.IncludeNotes)
		if err != nil {
			return err
		}
		created = inv
		return nil
	}

	if pricing.PricesChanged(estimate.LineItems, items) && cmd.ActorRole != entities.RoleAdmin {
		if cmd.AdminPIN == "" {
			return entities.Invoice{}, ErrApprovalRequired
		}
		pins, err := u.authz.AuthorizedSecrets(ctx, entities.RoleAdmin)
		if err != nil {
			return entities.Invoice{}, err
		}
		gate := approval.NewGate()
		if err := gate.Begin("Line item prices differ from the saved estimate.", pins, save); err != nil {
			return entities.Invoice{}, err
		}
		state, err := gate.Submit(cmd.AdminPIN)
		if state != approval.StateGranted {
			return entities.Invoice{}, err
		}
		if err != nil {
			// Granted but the released save itself failed.
			return entities.Invoice{}, err
		}
		return created, nil
	}

	if err := save(); err != nil {
		return entities.Invoice{}, err
	}
	return created, nil
}

func (u *InvoiceUseCase) persistInvoice(ctx context.Context, ticket entities.Ticket, items entities.LineItems, includeNotes bool) (entities.Invoice, error) {
	cfg, err := u.taxConfig(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	totals := pricing.Compute(items, cfg)

	var notes []string
	if includeNotes {
		notes = ticket.CustomerViewableNotes()
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:           uuid.NewString(),
		TicketID:     ticket.ID,
		CustomerID:   ticket.CustomerID,
		CustomerName: ticket.CustomerName,
		Date:         now.Format("2006-01-02"),
		DueDate:      now.AddDate(0, 0, invoiceDueDays).Format("2006-01-02"),
		LineItems:    items,
		Amount:       totals.Total,
		Status:       entities.InvoiceStatusPending,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if _, err := u.tickets.LinkInvoice(ctx, ticket.ID, created.ID, created.Amount); err != nil {
		return entities.Invoice{}, err
	}
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// RecordPayment charges the invoice through the payment gateway and flips it
// to Paid. The charged amount always comes from the stored invoice, never
// from the caller's payload.
func (u *InvoiceUseCase) RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if u.gateway == nil {
		return entities.Invoice{}, errors.New("payment gateway not configured")
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = inv.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice %s", inv.ID)
		}
		// The source of truth for amount is the invoice in DB.
		reqMap["transaction_amount"] = inv.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[payment][usecase] charging invoice_id=%s amount=%.2f", inv.ID, inv.Amount)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[payment][usecase] gateway success invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerPaymentID, providerStatus)

	updated, err := u.invoices.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusPaid)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) taxConfig(ctx context.Context) (entities.TaxConfig, error) {
	s, err := u.settings.Get(ctx)
	if err != nil {
		return entities.TaxConfig{}, err
	}
	return s.TaxConfig(), nil
}
