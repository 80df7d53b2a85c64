package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

// PostToConnectionAPI is the subset of the API Gateway management client used by DefaultPublisher.
type PostToConnectionAPI interface {
	PostToConnection(ctx context.Context, params *apigatewaymanagementapi.PostToConnectionInput, optFns ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error)
}

// DefaultPublisher delivers messages through the API Gateway WebSocket management API.
type DefaultPublisher struct {
	store       ConnectionLister
	connManager ConnectionManager
	apiGwClient PostToConnectionAPI
	logger      *slog.Logger
}

// NewPublisher creates a DefaultPublisher posting to the given API Gateway endpoint.
func NewPublisher(cfg aws.Config, store ConnectionLister, connManager ConnectionManager, apiEndpoint string, logger *slog.Logger) *DefaultPublisher {
	apiGwClient := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})
	return newPublisher(apiGwClient, store, connManager, logger)
}

func newPublisher(client PostToConnectionAPI, store ConnectionLister, connManager ConnectionManager, logger *slog.Logger) *DefaultPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultPublisher{
		store:       store,
		connManager: connManager,
		apiGwClient: client,
		logger:      logger,
	}
}

// Publish sends a message to every connection of the vendor. Stale connections are removed;
// other delivery failures are logged and do not fail the call.
func (p *DefaultPublisher) Publish(ctx context.Context, vendorID string, message Message) error {
	connectionIDs, err := p.store.ListConnections(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("failed to list connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := p.apiGwClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})
		if err == nil {
			continue
		}

		var goneErr *apigwtypes.GoneException
		if errors.As(err, &goneErr) {
			p.logger.Info("stale connection found, deleting", "connectionId", connectionID)
			if err := p.connManager.RemoveConnection(ctx, connectionID); err != nil {
				p.logger.Error("failed to delete stale connection", "error", err)
			}
			continue
		}
		p.logger.Error("failed to post to connection", "connectionId", connectionID, "error", err)
	}

	return nil
}
