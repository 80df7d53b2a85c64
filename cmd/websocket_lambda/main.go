package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/amc-warranty-claims/pkg/config"
	wshandler "github.com/chris/amc-warranty-claims/pkg/handlers/websockets"
	"github.com/chris/amc-warranty-claims/pkg/logging"
	dydbstore "github.com/chris/amc-warranty-claims/pkg/storage/dynamodb"
)

// The WebSocket API only touches the connections table, so this lambda skips the full
// service graph.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.ConnectionsTable == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME environment variable not set")
	}
	logger, _, err := logging.New(logging.Options{Level: cfg.LogLevel, JSON: true})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("unable to load SDK config", "error", err)
		os.Exit(1)
	}
	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.SubscriptionsTable, cfg.ClaimsTable,
		cfg.WalletsTable, cfg.LedgerTable, cfg.ConnectionsTable)

	h := wshandler.NewHandler(store, nil, logger)
	lambda.Start(h.Route)
}
