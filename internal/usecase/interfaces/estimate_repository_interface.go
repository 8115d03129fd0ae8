package interfaces

import (
	"context"

	"repairdeck/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Estimates are keyed by ticket id: at most one live estimate per ticket, and
// a save replaces the previous one. Absent records come back as zero-value
// entities, not errors.
type IEstimateRepository interface {
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByTicketID(ctx context.Context, ticketID string) (entities.Estimate, error)
}
