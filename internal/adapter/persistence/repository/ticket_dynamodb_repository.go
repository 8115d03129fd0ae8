package repository

import (
	"context"
	"errors"
	"time"

	"repairdeck/internal/domain/entities"
	"repairdeck/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTicketsTableName = "tickets"

type ticketItem struct {
	ID           string `dynamodbav:"id"`
	CustomerID   string `dynamodbav:"customer_id"`
	CustomerName string `dynamodbav:"customer_name"`
	Vehicle      string `dynamodbav:"vehicle"`
	Issue        string `dynamodbav:"issue"`
	Status       string `dynamodbav:"status"`
	Notes        string `dynamodbav:"notes,omitempty"`
	InvoiceID    string `dynamodbav:"invoice_id,omitempty"`
	Cost         string `dynamodbav:"cost"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return entities.Ticket{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TicketDynamoRepository) SetCost(ctx context.Context, id string, cost float64) (entities.Ticket, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #cost = :cost, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":cost":       &types.AttributeValueMemberS{Value: floatToString(cost)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#cost":       "cost",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TicketDynamoRepository) LinkInvoice(ctx context.Context, id, invoiceID string, cost float64) (entities.Ticket, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #invoice_id = :invoice_id, #cost = :cost, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":invoice_id": &types.AttributeValueMemberS{Value: invoiceID},
			":cost":       &types.AttributeValueMemberS{Value: floatToString(cost)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#invoice_id": "invoice_id",
			"#cost":       "cost",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TicketDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Ticket, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	return ticketItem{
		ID:           t.ID,
		CustomerID:   t.CustomerID,
		CustomerName: t.CustomerName,
		Vehicle:      t.Vehicle,
		Issue:        t.Issue,
		Status:       string(t.Status),
		Notes:        toJSON(t.Notes),
		InvoiceID:    t.InvoiceID,
		Cost:         floatToString(t.Cost),
		CreatedAt:    formatTime(t.CreatedAt),
		UpdatedAt:    formatTime(t.UpdatedAt),
	}
}

func fromTicketItem(it ticketItem) entities.Ticket {
	var notes []entities.Note
	fromJSON(it.Notes, &notes)
	return entities.Ticket{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		Vehicle:      it.Vehicle,
		Issue:        it.Issue,
		Status:       entities.TicketStatus(it.Status),
		Notes:        notes,
		InvoiceID:    it.InvoiceID,
		Cost:         stringToFloat(it.Cost),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
