package interfaces

import (
	"context"

	"repairdeck/internal/domain/entities"
)

// ISettingsRepository abstracts DynamoDB persistence for the single
// CompanySettings record that carries the tax rates.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.CompanySettings, error)
	Save(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error)
}
