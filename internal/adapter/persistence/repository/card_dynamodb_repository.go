package repository

import (
	"context"
	"time"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCardsTableName = "cards"
	cardsCustomerIndex    = "customer_external_id-index"
)

type cardItem struct {
	ExternalID         string `dynamodbav:"external_id"`
	CustomerExternalID string `dynamodbav:"customer_external_id"`
	Brand              string `dynamodbav:"brand"`
	First6             string `dynamodbav:"first6"`
	Last4              string `dynamodbav:"last4"`
	ExpMonth           int    `dynamodbav:"exp_month"`
	ExpYear            int    `dynamodbav:"exp_year"`
	IsDefault          bool   `dynamodbav:"is_default"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// CardDynamoRepository persists the local card bookkeeping, including the
// default-card flag. Callers serialize writes per customer; the repository
// itself performs plain upserts.
//
// Table requirements:
//   - PK: external_id (string)
//   - GSI: customer_external_id-index (PK: customer_external_id)

type CardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICardRepository = (*CardDynamoRepository)(nil)

func NewCardDynamoRepository(ddb *dynamodb.Client) *CardDynamoRepository {
	return &CardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARDS_TABLE", defaultCardsTableName),
	}
}

func (r *CardDynamoRepository) Save(ctx context.Context, c entities.Card) (entities.Card, error) {
	it := toCardItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Card{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Card{}, err
	}
	return c, nil
}

func (r *CardDynamoRepository) GetByExternalID(ctx context.Context, externalID string) (entities.Card, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"external_id": &types.AttributeValueMemberS{Value: externalID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Card{}, err
	}
	if len(out.Item) == 0 {
		return entities.Card{}, nil
	}

	var it cardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Card{}, err
	}
	return fromCardItem(it), nil
}

func (r *CardDynamoRepository) ListByCustomer(ctx context.Context, customerExternalID string) ([]entities.Card, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cardsCustomerIndex),
		KeyConditionExpression: aws.String("customer_external_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerExternalID},
		},
	})
	if err != nil {
		return nil, err
	}

	cards := make([]entities.Card, 0, len(out.Items))
	for _, raw := range out.Items {
		var it cardItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		cards = append(cards, fromCardItem(it))
	}
	return cards, nil
}

func (r *CardDynamoRepository) Delete(ctx context.Context, externalID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"external_id": &types.AttributeValueMemberS{Value: externalID},
		},
	})
	return err
}

func toCardItem(c entities.Card) cardItem {
	return cardItem{
		ExternalID:         c.ExternalID,
		CustomerExternalID: c.CustomerExternalID,
		Brand:              string(c.Brand),
		First6:             c.First6,
		Last4:              c.Last4,
		ExpMonth:           c.ExpMonth,
		ExpYear:            c.ExpYear,
		IsDefault:          c.IsDefault,
		CreatedAt:          c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCardItem(it cardItem) entities.Card {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Card{
		ExternalID:         it.ExternalID,
		CustomerExternalID: it.CustomerExternalID,
		Brand:              entities.CardBrand(it.Brand),
		First6:             it.First6,
		Last4:              it.Last4,
		ExpMonth:           it.ExpMonth,
		ExpYear:            it.ExpYear,
		IsDefault:          it.IsDefault,
		CreatedAt:          createdAt,
	}
}
