package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
)

const (
	claimsByUserIndex   = "user_id-created_at-index"
	claimsByStatusIndex = "status-created_at-index"
	claimsByOrderIndex  = "payment_order_id-index"
)

// GetClaim retrieves a claim by its ID.
func (s *Store) GetClaim(ctx context.Context, id string) (*models.WarrantyClaim, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.ClaimsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get claim from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("claim %s: %w", id, storage.ErrNotFound)
	}

	var claim models.WarrantyClaim
	if err := attributevalue.UnmarshalMap(result.Item, &claim); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claim: %w", err)
	}
	return &claim, nil
}

// ListClaims queries the most selective index for the filter and applies the rest in memory.
func (s *Store) ListClaims(ctx context.Context, filter storage.ClaimFilter) ([]models.WarrantyClaim, error) {
	var (
		items []map[string]types.AttributeValue
		err   error
	)
	switch {
	case filter.PaymentOrderID != "":
		items, err = s.queryAll(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.ClaimsTableName),
			IndexName:              aws.String(claimsByOrderIndex),
			KeyConditionExpression: aws.String("payment_order_id = :order_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":order_id": &types.AttributeValueMemberS{Value: filter.PaymentOrderID},
			},
		})
	case filter.UserID != "":
		items, err = s.queryAll(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.ClaimsTableName),
			IndexName:              aws.String(claimsByUserIndex),
			KeyConditionExpression: aws.String("user_id = :user_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user_id": &types.AttributeValueMemberS{Value: filter.UserID},
			},
			ScanIndexForward: aws.Bool(false),
		})
	case filter.Status != "":
		items, err = s.queryAll(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.ClaimsTableName),
			IndexName:              aws.String(claimsByStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
			},
			ScanIndexForward: aws.Bool(false),
		})
	default:
		items, err = s.scanAll(ctx, &dynamodb.ScanInput{
			TableName: aws.String(s.ClaimsTableName),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	var claims []models.WarrantyClaim
	if err := attributevalue.UnmarshalListOfMaps(items, &claims); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	matched := claims[:0]
	for _, c := range claims {
		if filter.UserID != "" && c.UserID != filter.UserID {
			continue
		}
		if filter.PaymentOrderID != "" && c.PaymentOrderID != filter.PaymentOrderID {
			continue
		}
		if filter.SubscriptionID != "" && c.SubscriptionID != filter.SubscriptionID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.EarningStatus != "" && c.EarningStatus != filter.EarningStatus {
			continue
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, nil
}

// CountClaims counts the claims matching the filter.
func (s *Store) CountClaims(ctx context.Context, filter storage.ClaimFilter) (int, error) {
	claims, err := s.ListClaims(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(claims), nil
}

// CreateClaim writes the claim and the debited subscription in one transaction.
func (s *Store) CreateClaim(ctx context.Context, claim *models.WarrantyClaim, sub *models.Subscription) error {
	claimAV, err := attributevalue.MarshalMap(claim)
	if err != nil {
		return fmt.Errorf("failed to marshal claim: %w", err)
	}
	subPut, err := s.subscriptionPut(sub)
	if err != nil {
		return err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the claim record.
				Put: &types.Put{
					TableName:           aws.String(s.ClaimsTableName),
					Item:                claimAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Write the debited entitlement.
				Put: subPut,
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if idx, ok := failedCondition(err); ok {
			if idx == 0 {
				return fmt.Errorf("claim %s: %w", claim.ID, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("subscription %s: %w", sub.ID, storage.ErrVersionConflict)
		}
		return fmt.Errorf("failed to execute claim transaction: %w", err)
	}

	sub.Version++
	return nil
}

// UpdateClaim replaces a claim guarded on its current status, together with sub when given.
func (s *Store) UpdateClaim(ctx context.Context, claim *models.WarrantyClaim, from models.ClaimStatus, sub *models.Subscription) error {
	claimAV, err := attributevalue.MarshalMap(claim)
	if err != nil {
		return fmt.Errorf("failed to marshal claim: %w", err)
	}

	claimPut := &types.Put{
		TableName:           aws.String(s.ClaimsTableName),
		Item:                claimAV,
		ConditionExpression: aws.String("#status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
		},
	}

	if sub == nil {
		_, err := s.Client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                 claimPut.TableName,
			Item:                      claimPut.Item,
			ConditionExpression:       claimPut.ConditionExpression,
			ExpressionAttributeNames:  claimPut.ExpressionAttributeNames,
			ExpressionAttributeValues: claimPut.ExpressionAttributeValues,
		})
		if err != nil {
			if isConditionFailure(err) {
				return fmt.Errorf("claim %s is no longer %s: %w", claim.ID, from, storage.ErrStatusConflict)
			}
			return fmt.Errorf("failed to update claim in DynamoDB: %w", err)
		}
		return nil
	}

	subPut, err := s.subscriptionPut(sub)
	if err != nil {
		return err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: claimPut},
			{Put: subPut},
		},
	}
	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if idx, ok := failedCondition(err); ok {
			if idx == 0 {
				return fmt.Errorf("claim %s is no longer %s: %w", claim.ID, from, storage.ErrStatusConflict)
			}
			return fmt.Errorf("subscription %s: %w", sub.ID, storage.ErrVersionConflict)
		}
		return fmt.Errorf("failed to execute claim transaction: %w", err)
	}

	sub.Version++
	return nil
}

// SetEarningStatus updates the earning flag of an existing claim.
func (s *Store) SetEarningStatus(ctx context.Context, claimID string, status models.EarningStatus) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ClaimsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: claimID},
		},
		UpdateExpression:    aws.String("SET earning_status = :earning_status, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":earning_status": &types.AttributeValueMemberS{Value: string(status)},
			":now":            nowAV,
		},
	})
	if err != nil {
		if isConditionFailure(err) {
			return fmt.Errorf("claim %s: %w", claimID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to update earning status: %w", err)
	}
	return nil
}

func (s *Store) queryAll(ctx context.Context, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, result.Items...)
		if len(result.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}

func (s *Store) scanAll(ctx context.Context, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		result, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, result.Items...)
		if len(result.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}
