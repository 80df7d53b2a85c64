package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/amc-warranty-claims/pkg/bootstrap"
	"github.com/chris/amc-warranty-claims/pkg/config"
	"github.com/chris/amc-warranty-claims/pkg/logging"
	"github.com/chris/amc-warranty-claims/pkg/scheduler"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
)

// earningPoster is satisfied by claims.EarningProcessor.
type earningPoster interface {
	Process(ctx context.Context, req wallet.EarningRequest) error
}

type handler struct {
	processor earningPoster
	logger    *slog.Logger
}

// HandleRequest posts the earning carried by each SQS message. Failed messages are reported
// individually so SQS only redelivers those.
func (h *handler) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		req, err := scheduler.DecodeEarning(message.Body)
		if err != nil {
			// A malformed body will never succeed; drop it rather than block the queue.
			h.logger.Error("discarding malformed earning message", "messageId", message.MessageId, "error", err)
			continue
		}

		if err := h.processor.Process(ctx, req); err != nil {
			h.logger.Error("failed to post earning", "messageId", message.MessageId, "caseId", req.CaseID, "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}
		h.logger.Info("earning posted from queue", "vendorId", req.VendorID, "caseId", req.CaseID)
	}
	return resp, nil
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

	// The consumer posts directly; re-enqueueing onto its own queue would loop.
	cfg.SQSQueueURL = ""
	app, err := bootstrap.Build(context.Background(), cfg, logger, nil)
	if err != nil {
		log.Fatalf("failed to wire services: %v", err)
	}

	h := &handler{processor: app.Processor, logger: logger}
	lambda.Start(h.HandleRequest)
}
