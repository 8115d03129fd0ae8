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
	defaultSettingsTableName = "company_settings"
	settingsRecordID         = "company"
)

type settingsItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name,omitempty"`
	SalesTaxRate string `dynamodbav:"sales_tax_rate"`
	LocalTaxRate string `dynamodbav:"local_tax_rate"`
}

// SettingsDynamoRepository persists the single CompanySettings record.
//
// Table requirements:
//   - PK: id (string; always "company")
type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.CompanySettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: settingsRecordID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.CompanySettings{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CompanySettings{}, err
	}
	return entities.CompanySettings{
		ID:           it.ID,
		Name:         it.Name,
		SalesTaxRate: stringToFloat(it.SalesTaxRate),
		LocalTaxRate: stringToFloat(it.LocalTaxRate),
	}, nil
}

func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
	s.ID = settingsRecordID
	av, err := attributevalue.MarshalMap(settingsItem{
		ID:           s.ID,
		Name:         s.Name,
		SalesTaxRate: floatToString(s.SalesTaxRate),
		LocalTaxRate: floatToString(s.LocalTaxRate),
	})
	if err != nil {
		return entities.CompanySettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CompanySettings{}, err
	}
	return s, nil
}
