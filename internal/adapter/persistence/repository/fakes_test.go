package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
)

// fakeDynamo is a single-table, string-keyed stand-in for DynamoDB.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int
	queries  int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func itemID(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := itemID(in.Item)
	if _, exists := f.items[id]; exists && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[itemID(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[itemID(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	updated := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		updated[k] = v
	}
	for placeholder, attr := range in.ExpressionAttributeNames {
		if v, ok := in.ExpressionAttributeValues[":"+strings.TrimPrefix(placeholder, "#")]; ok {
			updated[attr] = v
		}
	}
	f.items[itemID(in.Key)] = updated
	return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	want := in.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS).Value

	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if v, ok := item["pre_order_key"].(*types.AttributeValueMemberS); ok && v.Value == want {
			matched = append(matched, item)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return itemID(matched[i]) < itemID(matched[j]) })

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = indexOf(matched, itemID(in.ExclusiveStartKey))
		start++
	}
	end := len(matched)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}
	out := &dynamodb.QueryOutput{Items: matched[start:end]}
	if end < len(matched) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": matched[end-1]["id"]}
	}
	return out, nil
}

func indexOf(items []map[string]types.AttributeValue, id string) (int, bool) {
	for i, item := range items {
		if itemID(item) == id {
			return i, true
		}
	}
	return -1, false
}

// fakeRedis keeps values and the TTL they were written with.
type fakeRedis struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}
