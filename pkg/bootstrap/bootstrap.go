// Package bootstrap wires the services shared by the HTTP server and the lambdas.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/amc-warranty-claims/pkg/claims"
	"github.com/chris/amc-warranty-claims/pkg/config"
	"github.com/chris/amc-warranty-claims/pkg/metrics"
	"github.com/chris/amc-warranty-claims/pkg/payments"
	"github.com/chris/amc-warranty-claims/pkg/scheduler"
	"github.com/chris/amc-warranty-claims/pkg/storage"
	dydbstore "github.com/chris/amc-warranty-claims/pkg/storage/dynamodb"
	"github.com/chris/amc-warranty-claims/pkg/storage/memory"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/chris/amc-warranty-claims/pkg/websockets"
	"github.com/prometheus/client_golang/prometheus"
)

// App holds the wired services.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Store     storage.Storage
	Ledger    *wallet.Service
	Claims    *claims.Service
	Processor *claims.EarningProcessor
	Earnings  claims.EarningScheduler
	Payments  *payments.Service
	Metrics   *metrics.Metrics

	// Connections is set for the DynamoDB backend; Hub for local runs without API Gateway.
	Connections *dydbstore.Store
	Hub         *websockets.Hub

	awsCfg *aws.Config
}

// Build wires every service from cfg. Metrics are registered with registerer.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, registerer prometheus.Registerer) (*App, error) {
	a := &App{Config: cfg, Logger: logger, Metrics: metrics.New(registerer)}

	if err := a.buildStore(ctx); err != nil {
		return nil, err
	}
	publisher, err := a.buildPublisher(ctx)
	if err != nil {
		return nil, err
	}
	notifier := websockets.NewNotifier(publisher)

	fees, err := cfg.FeeSchedule()
	if err != nil {
		return nil, err
	}
	a.Ledger = wallet.NewService(a.Store, fees,
		wallet.WithNotifier(notifier),
		wallet.WithMetrics(a.Metrics),
		wallet.WithLogger(logger),
	)
	a.Processor = claims.NewEarningProcessor(a.Ledger, a.Store, logger)

	a.Earnings = a.Processor
	if cfg.SQSQueueURL != "" {
		awsCfg, err := a.aws(ctx)
		if err != nil {
			return nil, err
		}
		a.Earnings = scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL)
	}

	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	a.Claims = claims.NewService(claims.Deps{
		Store:      a.Store,
		Vendors:    a.Ledger,
		Notifier:   notifier,
		Earnings:   a.Earnings,
		Policy:     policy,
		Metrics:    a.Metrics,
		Logger:     logger,
		MaxRetries: cfg.MaxRetries,
	})
	a.Payments = payments.NewService(payments.NewVerifier(cfg.PaymentSecret), a.Store, a.Earnings, logger)
	return a, nil
}

func (a *App) buildStore(ctx context.Context) error {
	if a.Config.StorageBackend == config.BackendMemory {
		a.Logger.Warn("using in-memory storage; data is lost on exit")
		a.Store = memory.New()
		return nil
	}

	awsCfg, err := a.aws(ctx)
	if err != nil {
		return err
	}
	store := dydbstore.New(
		dynamodb.NewFromConfig(awsCfg),
		a.Config.SubscriptionsTable,
		a.Config.ClaimsTable,
		a.Config.WalletsTable,
		a.Config.LedgerTable,
		a.Config.ConnectionsTable,
	)
	a.Store = store
	if a.Config.ConnectionsTable != "" {
		a.Connections = store
	}
	return nil
}

func (a *App) buildPublisher(ctx context.Context) (websockets.Publisher, error) {
	if a.Config.WebsocketEndpoint != "" && a.Connections != nil {
		awsCfg, err := a.aws(ctx)
		if err != nil {
			return nil, err
		}
		return websockets.NewPublisher(awsCfg, a.Connections, a.Connections, a.Config.WebsocketEndpoint, a.Logger), nil
	}
	a.Hub = websockets.NewHub(a.Logger)
	return a.Hub, nil
}

func (a *App) aws(ctx context.Context) (aws.Config, error) {
	if a.awsCfg != nil {
		return *a.awsCfg, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
	}
	a.awsCfg = &cfg
	return cfg, nil
}
