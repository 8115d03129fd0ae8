package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairdeck/internal/domain/entities"
	"repairdeck/internal/domain/pricing"
	"repairdeck/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound = errors.New("estimate not found")
)

// IEstimateUseCase exposes the estimate side of the pricing workflow:
// saving a ticket's estimate (replacing any previous one) and reading it
// back for the editor.
type IEstimateUseCase interface {
	SaveEstimate(ctx context.Context, ticketID string, items entities.LineItems) (entities.Estimate, error)
	GetByTicketID(ctx context.Context, ticketID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	estimates interfaces.IEstimateRepository
	tickets   interfaces.ITicketRepository
	settings  interfaces.ISettingsRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(estimates interfaces.IEstimateRepository, tickets interfaces.ITicketRepository, settings interfaces.ISettingsRepository) *EstimateUseCase {
	return &EstimateUseCase{estimates: estimates, tickets: tickets, settings: settings}
}

// SaveEstimate validates the line items, computes totals against the current
// tax configuration and replaces the ticket's estimate. The ticket's tracked
// cost follows the new estimate total, which is what later feeds the
// Completed-transition guard for tickets without an invoice.
func (u *EstimateUseCase) SaveEstimate(ctx context.Context, ticketID string, items entities.LineItems) (entities.Estimate, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return entities.Estimate{}, ErrInvalidTicketID
	}
	items = items.Clone()
	items.EnsureIDs()
	if err := items.Validate(); err != nil {
		return entities.Estimate{}, err
	}

	ticket, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if ticket.ID == "" {
		return entities.Estimate{}, ErrTicketNotFound
	}

	cfg, err := u.taxConfig(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	totals := pricing.Compute(items, cfg)

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:        uuid.NewString(),
		TicketID:  ticketID,
		LineItems: items,
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := u.estimates.Save(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if _, err := u.tickets.SetCost(ctx, ticketID, totals.Total); err != nil {
		return entities.Estimate{}, err
	}
	return saved, nil
}

func (u *EstimateUseCase) GetByTicketID(ctx context.Context, ticketID string) (entities.Estimate, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return entities.Estimate{}, ErrInvalidTicketID
	}

	e, err := u.estimates.GetByTicketID(ctx, ticketID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) taxConfig(ctx context.Context) (entities.TaxConfig, error) {
	s, err := u.settings.Get(ctx)
	if err != nil {
		return entities.TaxConfig{}, err
	}
	// An unconfigured shop simply has zero rates.
	return s.TaxConfig(), nil
}
