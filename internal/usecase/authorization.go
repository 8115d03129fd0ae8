package usecase

import (
	"context"

	"repairdeck/internal/domain/approval"
	"repairdeck/internal/domain/entities"
	"repairdeck/internal/usecase/interfaces"
)

// EmployeePinProvider backs the approval gate with the PIN set of the
// accounts holding the requested role. The gate itself never learns how
// accounts are stored.
type EmployeePinProvider struct {
	employees interfaces.IEmployeeRepository
}

var _ approval.AuthorizationProvider = (*EmployeePinProvider)(nil)

func NewEmployeePinProvider(employees interfaces.IEmployeeRepository) *EmployeePinProvider {
	return &EmployeePinProvider{employees: employees}
}

func (p *EmployeePinProvider) AuthorizedSecrets(ctx context.Context, role entities.EmployeeRole) ([]string, error) {
	list, err := p.employees.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	var pins []string
	for _, e := range list {
		if e.PIN != "" {
			pins = append(pins, e.PIN)
		}
	}
	return pins, nil
}
