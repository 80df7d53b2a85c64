package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
)

// GetSubscription retrieves a subscription by its ID.
func (s *Store) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.SubscriptionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("subscription %s: %w", id, storage.ErrNotFound)
	}

	var sub models.Subscription
	if err := attributevalue.UnmarshalMap(result.Item, &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subscription: %w", err)
	}
	return &sub, nil
}

// CreateSubscription stores a new subscription record.
func (s *Store) CreateSubscription(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	item, err := attributevalue.MarshalMap(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal subscription: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.SubscriptionsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		if isConditionFailure(err) {
			return nil, fmt.Errorf("subscription %s: %w", sub.ID, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create subscription in DynamoDB: %w", err)
	}
	return sub, nil
}

// subscriptionPut builds the conditional write of a staged subscription. The stored version must
// still equal sub.Version; the written item carries the next version.
func (s *Store) subscriptionPut(sub *models.Subscription) (*types.Put, error) {
	next := *sub
	next.Version = sub.Version + 1
	item, err := attributevalue.MarshalMap(next)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal subscription: %w", err)
	}

	return &types.Put{
		TableName:           aws.String(s.SubscriptionsTableName),
		Item:                item,
		ConditionExpression: aws.String("version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(sub.Version, 10)},
		},
	}, nil
}
