package claims

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
)

// mutation stages the side effects of a transition. sub is nil unless the transition touches
// the subscription.
type mutation func(c *models.WarrantyClaim, sub *models.Subscription, now time.Time)

// apply reads the claim, checks the transition, stages the mutation and writes it back
// conditional on the claim still being in the status it was read in.
func (s *Service) apply(ctx context.Context, id string, event Event, withSubscription bool, mutate mutation) (*models.WarrantyClaim, error) {
	var updated *models.WarrantyClaim
	err := s.retry(ctx, event, func() error {
		current, err := s.store.GetClaim(ctx, id)
		if err != nil {
			return notFound(err)
		}
		to, err := Transition(current.Status, event)
		if err != nil {
			return err
		}

		var sub *models.Subscription
		if withSubscription {
			sub, err = s.loadSubscription(ctx, current.SubscriptionID)
			if err != nil {
				return err
			}
		}

		now := s.now()
		next := *current
		next.Status = to
		next.UpdatedAt = now
		mutate(&next, sub, now)

		if err := s.store.UpdateClaim(ctx, &next, current.Status, sub); err != nil {
			if errors.Is(err, storage.ErrStatusConflict) {
				return fmt.Errorf("claim %s changed while applying %s: %w", id, event, apperrors.ErrInvalidTransition)
			}
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ClaimTransition(string(event), string(updated.Status))
	s.logger.InfoContext(ctx, "claim transitioned",
		slog.String("claim_id", updated.ID),
		slog.String("event", string(event)),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

// retry runs fn again while it fails with a subscription version conflict.
func (s *Service) retry(ctx context.Context, event Event, fn func() error) error {
	var err error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		err = fn()
		if !errors.Is(err, storage.ErrVersionConflict) {
			return err
		}
		s.metrics.VersionConflict(string(event))
		s.logger.DebugContext(ctx, "subscription changed concurrently, retrying",
			slog.String("event", string(event)),
			slog.Int("attempt", attempt),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return fmt.Errorf("failed to %s after %d attempts: %w", event, s.maxRetries, err)
}

// loadSubscription reads a subscription and backfills its entitlements to the policy minimums.
// The backfill is persisted with the next write of the subscription.
func (s *Service) loadSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	sub, err := s.store.GetSubscription(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	s.policy.Backfill(sub)
	return sub, nil
}

func (s *Service) scheduleEarning(ctx context.Context, claim *models.WarrantyClaim) (models.EarningStatus, error) {
	if s.earnings == nil {
		return models.EarningPending, nil
	}

	req := wallet.NewEarningRequest(claim.AssignedVendor, claim.ID, *claim.Billing)
	status, err := s.earnings.ScheduleEarning(ctx, req)
	if err != nil {
		s.metrics.EarningFailed("schedule")
		s.logger.ErrorContext(ctx, "failed to schedule vendor earning, left pending",
			slog.String("claim_id", claim.ID),
			slog.String("vendor_id", claim.AssignedVendor),
			slog.Any("error", err),
		)
		return models.EarningPending, err
	}
	return status, nil
}

// notFound converts a storage miss into the workflow's NotFound error.
func notFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %v", apperrors.ErrNotFound, err)
	}
	return err
}
