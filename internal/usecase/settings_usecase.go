package usecase

import (
	"context"
	"errors"

	"repairdeck/internal/domain/entities"
	"repairdeck/internal/usecase/interfaces"
)

var ErrInvalidTaxRate = errors.New("tax rates must be non-negative")

const companySettingsID = "company"

// ISettingsUseCase reads and updates the company tax configuration.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.CompanySettings, error)
	UpdateTaxRates(ctx context.Context, salesTaxRate, localTaxRate float64) (entities.CompanySettings, error)
}

type SettingsUseCase struct {
	settings interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(settings interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.CompanySettings, error) {
	s, err := u.settings.Get(ctx)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if s.ID == "" {
		// Unconfigured shop: zero rates.
		s.ID = companySettingsID
	}
	return s, nil
}

func (u *SettingsUseCase) UpdateTaxRates(ctx context.Context, salesTaxRate, localTaxRate float64) (entities.CompanySettings, error) {
	if salesTaxRate < 0 || localTaxRate < 0 {
		return entities.CompanySettings{}, ErrInvalidTaxRate
	}

	s, err := u.settings.Get(ctx)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	s.ID = companySettingsID
	s.SalesTaxRate = salesTaxRate
	s.LocalTaxRate = localTaxRate
	return u.settings.Save(ctx, s)
}
