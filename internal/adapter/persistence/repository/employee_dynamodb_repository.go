package repository

import (
	"context"

	"repairdeck/internal/domain/entities"
	"repairdeck/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEmployeesTableName = "employees"
	employeesRoleIndex        = "role-index"
)

type employeeItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Role  string `dynamodbav:"role"`
	Email string `dynamodbav:"email"`
	PIN   string `dynamodbav:"pin,omitempty"`
}

// EmployeeDynamoRepository reads Employee records from DynamoDB. Only the
// role query is needed here: the approval gate pulls the Admin PIN set.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: role-index (PK: role)
type EmployeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb *dynamodb.Client) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMPLOYEES_TABLE", defaultEmployeesTableName),
	}
}

func (r *EmployeeDynamoRepository) ListByRole(ctx context.Context, role entities.EmployeeRole) ([]entities.Employee, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(employeesRoleIndex),
		KeyConditionExpression: aws.String("#role = :role"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
		ExpressionAttributeNames: map[string]string{
			"#role": "role",
		},
	})
	if err != nil {
		return nil, err
	}

	employees := make([]entities.Employee, 0, len(out.Items))
	for _, raw := range out.Items {
		var it employeeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		employees = append(employees, entities.Employee{
			ID:    it.ID,
			Name:  it.Name,
			Role:  entities.EmployeeRole(it.Role),
			Email: it.Email,
			PIN:   it.PIN,
		})
	}
	return employees, nil
}
