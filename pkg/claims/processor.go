package claims

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
)

// EarningProcessor posts vendor earnings to the wallet ledger and marks the originating claim
// as posted. It serves both as the in-process EarningScheduler and as the queue consumer.
type EarningProcessor struct {
	ledger wallet.Ledger
	claims storage.ClaimWriter
	logger *slog.Logger
}

// NewEarningProcessor creates an EarningProcessor.
func NewEarningProcessor(ledger wallet.Ledger, claims storage.ClaimWriter, logger *slog.Logger) *EarningProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &EarningProcessor{ledger: ledger, claims: claims, logger: logger}
}

var _ EarningScheduler = (*EarningProcessor)(nil)

// Process posts the earning. Replays of an already-posted earning succeed without a second
// ledger entry. Earnings for cases that are not claims are posted without touching any claim.
func (p *EarningProcessor) Process(ctx context.Context, req wallet.EarningRequest) error {
	if _, err := p.ledger.PostEarning(ctx, req); err != nil {
		if !errors.Is(err, wallet.ErrDuplicateEarning) {
			return fmt.Errorf("failed to post earning for case %s: %w", req.CaseID, err)
		}
		p.logger.InfoContext(ctx, "earning already posted", slog.String("vendor_id", req.VendorID), slog.String("case_id", req.CaseID))
	}

	if err := p.claims.SetEarningStatus(ctx, req.CaseID, models.EarningPosted); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to mark earning posted for claim %s: %w", req.CaseID, err)
	}
	return nil
}

// ScheduleEarning posts the earning immediately.
func (p *EarningProcessor) ScheduleEarning(ctx context.Context, req wallet.EarningRequest) (models.EarningStatus, error) {
	if err := p.Process(ctx, req); err != nil {
		return models.EarningPending, err
	}
	return models.EarningPosted, nil
}
