package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pupperhq/pupper-api/internal/domain"
)

// DynamoAPI is the slice of the DynamoDB client the stores use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DogStore persists listings in the dogs table (partition key: id).
type DogStore struct {
	client DynamoAPI
	table  string
}

func NewDogStore(client DynamoAPI, table string) *DogStore {
	return &DogStore{client: client, table: table}
}

// Get fetches one listing by id. A missing item returns (nil, nil).
func (s *DogStore) Get(ctx context.Context, id string) (*domain.Dog, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get dog %s: %w", id, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var dog domain.Dog
	if err := attributevalue.UnmarshalMap(out.Item, &dog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dog %s: %w", id, err)
	}
	return &dog, nil
}

// Put writes one listing. Listings are only ever written whole, once, at
// pipeline completion.
func (s *DogStore) Put(ctx context.Context, dog *domain.Dog) error {
	item, err := attributevalue.MarshalMap(dog)
	if err != nil {
		return fmt.Errorf("failed to marshal dog: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put dog: %w", err)
	}
	return nil
}

// List scans one page of listings. nextToken is the opaque continuation token
// from a previous page ("" for the first page); the returned token is "" when
// no results remain. An unparseable token fails with
// domain.ErrInvalidPageToken before the store is touched.
func (s *DogStore) List(ctx context.Context, limit int32, nextToken string) ([]domain.Dog, string, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(s.table),
		Limit:     aws.Int32(limit),
	}
	if nextToken != "" {
		startKey, err := DecodePageToken(nextToken)
		if err != nil {
			return nil, "", err
		}
		in.ExclusiveStartKey = startKey
	}

	out, err := s.client.Scan(ctx, in)
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan dogs: %w", err)
	}

	dogs := make([]domain.Dog, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &dogs); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal dogs: %w", err)
	}

	token := ""
	if len(out.LastEvaluatedKey) > 0 {
		token, err = EncodePageToken(out.LastEvaluatedKey)
		if err != nil {
			return nil, "", err
		}
	}
	return dogs, token, nil
}

// InteractionStore persists reactions in the interactions table
// (partition key: userId, sort key: dogId). Writes are idempotent
// replacements keyed on that pair.
type InteractionStore struct {
	client DynamoAPI
	table  string
}

func NewInteractionStore(client DynamoAPI, table string) *InteractionStore {
	return &InteractionStore{client: client, table: table}
}

// Put writes or overwrites the caller's current reaction to one listing.
func (s *InteractionStore) Put(ctx context.Context, in *domain.Interaction) error {
	item, err := attributevalue.MarshalMap(in)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put interaction: %w", err)
	}
	return nil
}

// LikedDogIDs returns the ids of every listing the user currently has a LIKE
// recorded for.
func (s *InteractionStore) LikedDogIDs(ctx context.Context, userID string) ([]string, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("userId = :uid"),
		FilterExpression:       aws.String("interaction = :like"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":  &types.AttributeValueMemberS{Value: userID},
			":like": &types.AttributeValueMemberS{Value: string(domain.InteractionLike)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}

	var items []domain.Interaction
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.DogID)
	}
	return ids, nil
}
