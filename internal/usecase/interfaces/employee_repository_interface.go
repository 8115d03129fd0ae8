package interfaces

import (
	"context"

	"repairdeck/internal/domain/entities"
)

// IEmployeeRepository abstracts DynamoDB persistence for Employee.
// The approval gate reads Admin-role accounts from it to build the
// authorized PIN set.
type IEmployeeRepository interface {
	ListByRole(ctx context.Context, role entities.EmployeeRole) ([]entities.Employee, error)
}
