package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "checkout_sessions"

type sessionItem struct {
	ID          string `dynamodbav:"id"`
	PreOrderKey string `dynamodbav:"pre_order_key"`
	Phase       string `dynamodbav:"phase"`
	Payload     string `dynamodbav:"payload"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	ExpiresAt   int64  `dynamodbav:"expires_at"`
}

// SessionDynamoRepository persists checkout sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB removes expired items lazily, so reads also check expires_at.

type SessionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client, ttl time.Duration) *SessionDynamoRepository {
	return newSessionDynamoRepository(ddb, ttl)
}

func newSessionDynamoRepository(ddb dynamoAPI, ttl time.Duration) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKOUT_SESSIONS_TABLE", defaultSessionsTableName),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	it, err := r.toSessionItem(s)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CheckoutSession{}, err
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
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutSession{}, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() >= it.ExpiresAt {
		return entities.CheckoutSession{}, nil
	}
	return fromSessionItem(it)
}

// Save overwrites an existing session and extends its expiry. A session that
// is gone comes back as the zero value.
func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	it, err := r.toSessionItem(s)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #payload = :payload, #phase = :phase, #updated_at = :updated_at, #expires_at = :expires_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payload":    &types.AttributeValueMemberS{Value: it.Payload},
			":phase":      &types.AttributeValueMemberS{Value: it.Phase},
			":updated_at": &types.AttributeValueMemberS{Value: it.UpdatedAt},
			":expires_at": &types.AttributeValueMemberN{Value: strconv.FormatInt(it.ExpiresAt, 10)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#payload":    "payload",
			"#phase":      "phase",
			"#updated_at": "updated_at",
			"#expires_at": "expires_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CheckoutSession{}, nil
		}
		return entities.CheckoutSession{}, err
	}
	if len(out.Attributes) == 0 {
		return s, nil
	}
	var saved sessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &saved); err != nil {
		return entities.CheckoutSession{}, err
	}
	return fromSessionItem(saved)
}

func (r *SessionDynamoRepository) toSessionItem(s entities.CheckoutSession) (sessionItem, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return sessionItem{}, err
	}
	it := sessionItem{
		ID:          s.ID,
		PreOrderKey: s.PreOrderKey,
		Phase:       s.Attempt.Phase.String(),
		Payload:     string(payload),
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if r.ttl > 0 {
		it.ExpiresAt = r.now().Add(r.ttl).Unix()
	}
	return it, nil
}

func fromSessionItem(it sessionItem) (entities.CheckoutSession, error) {
	var s entities.CheckoutSession
	if err := json.Unmarshal([]byte(it.Payload), &s); err != nil {
		return entities.CheckoutSession{}, err
	}
	return s, nil
}
