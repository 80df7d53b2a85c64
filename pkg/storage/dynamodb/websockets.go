package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/amc-warranty-claims/pkg/websockets"
)

const (
	connectionsPK            = "connections"
	connectionsIndex         = "pk-index"
	connectionsByVendorIndex = "vendor_id-index"
)

// connectionRecord represents a record in the WebSocket connections table.
type connectionRecord struct {
	ConnectionID string `dynamodbav:"connection_id"`
	VendorID     string `dynamodbav:"vendor_id,omitempty"`
	PK           string `dynamodbav:"pk"`
}

var (
	_ websockets.ConnectionManager = (*Store)(nil)
	_ websockets.ConnectionLister  = (*Store)(nil)
)

// AddConnection saves a new WebSocket connection to the database.
func (s *Store) AddConnection(ctx context.Context, conn websockets.Connection) error {
	item, err := attributevalue.MarshalMap(connectionRecord{
		ConnectionID: conn.ConnectionID,
		VendorID:     conn.VendorID,
		PK:           connectionsPK,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.WebsocketConnectionsTableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put connection: %w", err)
	}
	return nil
}

// RemoveConnection deletes a WebSocket connection ID from the database.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.WebsocketConnectionsTableName),
		Key: map[string]types.AttributeValue{
			"connection_id": &types.AttributeValueMemberS{Value: connectionID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	return nil
}

// ListConnections returns the connection IDs registered for a vendor, or every connection when
// vendorID is empty.
func (s *Store) ListConnections(ctx context.Context, vendorID string) ([]string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.WebsocketConnectionsTableName),
		IndexName:              aws.String(connectionsIndex),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: connectionsPK},
		},
		ProjectionExpression: aws.String("connection_id"),
	}
	if vendorID != "" {
		input.IndexName = aws.String(connectionsByVendorIndex)
		input.KeyConditionExpression = aws.String("vendor_id = :vendor_id")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":vendor_id": &types.AttributeValueMemberS{Value: vendorID},
		}
	}

	items, err := s.queryAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections table: %w", err)
	}

	var records []connectionRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
	}

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ConnectionID
	}
	return ids, nil
}
