package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/amc-warranty-claims/pkg/bootstrap"
	"github.com/chris/amc-warranty-claims/pkg/claims"
	"github.com/chris/amc-warranty-claims/pkg/config"
	"github.com/chris/amc-warranty-claims/pkg/logging"
)

type reconciler interface {
	ReconcileEarnings(ctx context.Context) (claims.ReconcileReport, error)
}

type handler struct {
	claims reconciler
	logger *slog.Logger
}

// HandleRequest is triggered by an EventBridge schedule. It re-schedules the earnings of
// completed claims that never reached the wallet ledger.
func (h *handler) HandleRequest(ctx context.Context) (claims.ReconcileReport, error) {
	h.logger.Info("starting earning reconciliation")

	report, err := h.claims.ReconcileEarnings(ctx)
	if err != nil {
		h.logger.Error("earning reconciliation failed", "error", err)
		return report, err
	}
	if report.Failed > 0 {
		h.logger.Warn("some earnings are still pending", "failed", report.Failed, "scanned", report.Scanned)
	}
	return report, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, _, err := logging.New(logging.Options{Level: cfg.LogLevel, JSON: true})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	app, err := bootstrap.Build(context.Background(), cfg, logger, nil)
	if err != nil {
		log.Fatalf("failed to wire services: %v", err)
	}

	h := &handler{claims: app.Claims, logger: logger}
	lambda.Start(h.HandleRequest)
}
