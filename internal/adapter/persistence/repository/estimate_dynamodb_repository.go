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

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	TicketID  string `dynamodbav:"ticket_id"`
	ID        string `dynamodbav:"id"`
	LineItems string `dynamodbav:"line_items"`
	Subtotal  string `dynamodbav:"subtotal"`
	Tax       string `dynamodbav:"tax"`
	Total     string `dynamodbav:"total"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: ticket_id (string)
//
// Using the ticket id as PK guarantees one live estimate per ticket; Save is
// an unconditional put so a new save replaces the previous estimate.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByTicketID(ctx context.Context, ticketID string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"ticket_id": &types.AttributeValueMemberS{Value: ticketID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		TicketID:  e.TicketID,
		ID:        e.ID,
		LineItems: toJSON(e.LineItems),
		Subtotal:  floatToString(e.Subtotal),
		Tax:       floatToString(e.Tax),
		Total:     floatToString(e.Total),
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	var items entities.LineItems
	fromJSON(it.LineItems, &items)
	return entities.Estimate{
		TicketID:  it.TicketID,
		ID:        it.ID,
		LineItems: items,
		Subtotal:  stringToFloat(it.Subtotal),
		Tax:       stringToFloat(it.Tax),
		Total:     stringToFloat(it.Total),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
