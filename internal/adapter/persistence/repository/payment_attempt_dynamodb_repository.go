package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAttemptsTableName = "payment_attempts"
	attemptsPreOrderKeyIndex = "pre_order_key-index"
)

type paymentAttemptItem struct {
	ID                 string                 `dynamodbav:"id"`
	SessionID          string                 `dynamodbav:"session_id"`
	PreOrderKey        string                 `dynamodbav:"pre_order_key"`
	Method             string                 `dynamodbav:"method"`
	Route              string                 `dynamodbav:"route"`
	Outcome            string                 `dynamodbav:"outcome"`
	Amount             int64                  `dynamodbav:"amount"`
	UsedPoints         int64                  `dynamodbav:"used_points"`
	OrderID            string                 `dynamodbav:"order_id,omitempty"`
	Message            string                 `dynamodbav:"message,omitempty"`
	Date               string                 `dynamodbav:"date"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentAttemptDynamoRepository is the attempt ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: pre_order_key-index (PK: pre_order_key)

type PaymentAttemptDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentAttemptRepository = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb *dynamodb.Client) *PaymentAttemptDynamoRepository {
	return newPaymentAttemptDynamoRepository(ddb)
}

func newPaymentAttemptDynamoRepository(ddb dynamoAPI) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_ATTEMPTS_TABLE", defaultAttemptsTableName),
	}
}

func (r *PaymentAttemptDynamoRepository) Create(ctx context.Context, rec entities.PaymentAttemptRecord) (entities.PaymentAttemptRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentAttemptItem(rec))
	if err != nil {
		return entities.PaymentAttemptRecord{}, err
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
		return entities.PaymentAttemptRecord{}, err
	}
	return rec, nil
}

// ListByPreOrderKey returns the attempts of a pre-order, oldest first.
func (r *PaymentAttemptDynamoRepository) ListByPreOrderKey(ctx context.Context, preOrderKey string) ([]entities.PaymentAttemptRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(attemptsPreOrderKeyIndex),
		KeyConditionExpression: aws.String("pre_order_key = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: preOrderKey},
		},
	}

	records := []entities.PaymentAttemptRecord{}
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentAttemptItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromPaymentAttemptItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func toPaymentAttemptItem(rec entities.PaymentAttemptRecord) paymentAttemptItem {
	it := paymentAttemptItem{
		ID:                 rec.ID,
		SessionID:          rec.SessionID,
		PreOrderKey:        rec.PreOrderKey,
		Method:             string(rec.Method),
		Route:              string(rec.Route),
		Outcome:            string(rec.Outcome),
		Amount:             rec.Amount,
		UsedPoints:         rec.UsedPoints,
		OrderID:            rec.OrderID,
		Message:            rec.Message,
		Date:               rec.Date.UTC().Format(time.RFC3339Nano),
		ProviderPayloadRaw: string(rec.ProviderPayloadRaw),
	}
	if len(rec.ProviderPayloadRaw) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(rec.ProviderPayloadRaw, &parsed); err == nil {
			it.ProviderPayload = parsed
		}
	}
	return it
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttemptRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	rec := entities.PaymentAttemptRecord{
		ID:          it.ID,
		SessionID:   it.SessionID,
		PreOrderKey: it.PreOrderKey,
		Method:      entities.PaymentMethod(it.Method),
		Route:       entities.PaymentRoute(it.Route),
		Outcome:     entities.AttemptOutcome(it.Outcome),
		Amount:      it.Amount,
		UsedPoints:  it.UsedPoints,
		OrderID:     it.OrderID,
		Message:     it.Message,
		Date:        dt,
	}
	if it.ProviderPayloadRaw != "" {
		rec.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return rec
}
