// Package claims runs the warranty claim workflow: submission against an AMC entitlement, admin
// review, vendor assignment and completion.
package claims

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/entitlement"
	"github.com/chris/amc-warranty-claims/pkg/metrics"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultMaxRetries = 3

// Notifier delivers the vendor-assignment message.
type Notifier interface {
	NotifyVendorAssignment(ctx context.Context, claim models.WarrantyClaim) error
}

// VendorDirectory resolves vendor IDs.
type VendorDirectory interface {
	VendorExists(ctx context.Context, vendorID string) (bool, error)
}

// EarningScheduler hands a vendor earning to the wallet ledger, directly or through a queue.
// The returned status is EarningPosted when the entry is already written and EarningPending
// when it will be written later.
type EarningScheduler interface {
	ScheduleEarning(ctx context.Context, req wallet.EarningRequest) (models.EarningStatus, error)
}

// Store is the persistence the workflow needs.
type Store interface {
	storage.SubscriptionStore
	storage.ClaimStore
}

// Workflow is the claim surface exposed to the HTTP handlers and lambdas.
type Workflow interface {
	Submit(ctx context.Context, req SubmitRequest) (*models.WarrantyClaim, error)
	Get(ctx context.Context, id, userID string) (*models.WarrantyClaim, error)
	List(ctx context.Context, q ListQuery) (*ClaimPage, error)
	Approve(ctx context.Context, id string, req ApproveRequest) (*models.WarrantyClaim, error)
	Reject(ctx context.Context, id string, req RejectRequest) (*models.WarrantyClaim, error)
	AssignVendor(ctx context.Context, id string, req AssignRequest) (*models.WarrantyClaim, error)
	Complete(ctx context.Context, id string, req CompleteRequest) (*models.WarrantyClaim, error)
	ReconcileEarnings(ctx context.Context) (ReconcileReport, error)
}

// Deps are the collaborators of a Service. Notifier, Earnings and Metrics may be nil.
type Deps struct {
	Store      Store
	Vendors    VendorDirectory
	Notifier   Notifier
	Earnings   EarningScheduler
	Policy     entitlement.Policy
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	MaxRetries int
	Now        func() time.Time
}

// Service implements Workflow.
type Service struct {
	store      Store
	vendors    VendorDirectory
	notifier   Notifier
	earnings   EarningScheduler
	policy     entitlement.Policy
	metrics    *metrics.Metrics
	logger     *slog.Logger
	validate   *validator.Validate
	maxRetries int
	now        func() time.Time
}

// NewService creates a claim workflow Service.
func NewService(deps Deps) *Service {
	s := &Service{
		store:      deps.Store,
		vendors:    deps.Vendors,
		notifier:   deps.Notifier,
		earnings:   deps.Earnings,
		policy:     deps.Policy,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		validate:   validator.New(),
		maxRetries: deps.MaxRetries,
		now:        deps.Now,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.maxRetries <= 0 {
		s.maxRetries = defaultMaxRetries
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.policy.Minimums == nil {
		s.policy.Minimums = entitlement.DefaultMinimums()
	}
	return s
}

var _ Workflow = (*Service)(nil)

// Submit debits one unit of the subscription's entitlement and opens a pending claim. The debit
// and the claim are written together, conditional on the subscription not having changed since
// it was read; on conflict the whole check is repeated.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*models.WarrantyClaim, error) {
	req.IssueDescription = strings.TrimSpace(req.IssueDescription)
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}
	if !req.ServiceCategory.Valid() {
		return nil, apperrors.Validation("unknown service category %q", req.ServiceCategory)
	}

	var claim *models.WarrantyClaim
	err := s.retry(ctx, EventSubmit, func() error {
		sub, err := s.loadSubscription(ctx, req.SubscriptionID)
		if err != nil {
			return err
		}
		if sub.UserID != req.UserID {
			return fmt.Errorf("subscription %s: %w", req.SubscriptionID, apperrors.ErrNotFound)
		}

		now := s.now()
		if sub.Expired(now) {
			return fmt.Errorf("subscription %s ended on %s: %w", sub.ID, sub.EndDate.Format(time.DateOnly), apperrors.ErrExpired)
		}

		reset, err := s.policy.Reserve(sub, req.ServiceCategory)
		if err != nil {
			s.metrics.QuotaRejected(string(req.ServiceCategory))
			return fmt.Errorf("no %s units left on subscription %s: %w", req.ServiceCategory, sub.ID, err)
		}
		if reset {
			s.metrics.QuotaReset(string(req.ServiceCategory))
			s.logger.WarnContext(ctx, "entitlement reset by quota override policy",
				slog.String("subscription_id", sub.ID),
				slog.String("category", string(req.ServiceCategory)),
				slog.String("policy", string(s.policy.Override)),
			)
		}

		status, err := Transition("", EventSubmit)
		if err != nil {
			return err
		}
		planName := req.PlanName
		if planName == "" {
			planName = sub.PlanName
		}
		c := &models.WarrantyClaim{
			ID:               uuid.New().String(),
			SubscriptionID:   sub.ID,
			UserID:           req.UserID,
			PlanName:         planName,
			ServiceCategory:  req.ServiceCategory,
			IssueDescription: req.IssueDescription,
			Status:           status,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.store.CreateClaim(ctx, c, sub); err != nil {
			return err
		}
		claim = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ClaimTransition(string(EventSubmit), string(claim.Status))
	s.logger.InfoContext(ctx, "claim submitted",
		slog.String("claim_id", claim.ID),
		slog.String("subscription_id", claim.SubscriptionID),
		slog.String("category", string(claim.ServiceCategory)),
	)
	return claim, nil
}

// Get returns a claim. A non-empty userID restricts the lookup to that user's claims.
func (s *Service) Get(ctx context.Context, id, userID string) (*models.WarrantyClaim, error) {
	claim, err := s.store.GetClaim(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if userID != "" && claim.UserID != userID {
		return nil, fmt.Errorf("claim %s: %w", id, apperrors.ErrNotFound)
	}
	return claim, nil
}

// Approve moves a pending claim to approved and counts the service as used.
func (s *Service) Approve(ctx context.Context, id string, req ApproveRequest) (*models.WarrantyClaim, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	return s.apply(ctx, id, EventApprove, true, func(c *models.WarrantyClaim, sub *models.Subscription, now time.Time) {
		c.ApprovedBy = req.AdminID
		c.ApprovedAt = &now
		if req.AdminNotes != "" {
			c.AdminNotes = req.AdminNotes
		}
		sub.ServiceUsage[c.ServiceCategory]++
	})
}

// Reject moves a pending claim to rejected and refunds the unit taken at submission.
func (s *Service) Reject(ctx context.Context, id string, req RejectRequest) (*models.WarrantyClaim, error) {
	req.Reason = strings.TrimSpace(req.Reason)
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	return s.apply(ctx, id, EventReject, true, func(c *models.WarrantyClaim, sub *models.Subscription, now time.Time) {
		c.RejectedBy = req.AdminID
		c.RejectedAt = &now
		c.RejectionReason = req.Reason
		if req.AdminNotes != "" {
			c.AdminNotes = req.AdminNotes
		}
		entitlement.Credit(sub, c.ServiceCategory)
	})
}

// AssignVendor hands an approved claim to a registered vendor and notifies them. A failed
// notification is logged and does not undo the assignment.
func (s *Service) AssignVendor(ctx context.Context, id string, req AssignRequest) (*models.WarrantyClaim, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}
	exists, err := s.vendors.VendorExists(ctx, req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("%w: vendor lookup: %v", apperrors.ErrDependencyFailure, err)
	}
	if !exists {
		return nil, apperrors.Validation("vendor %s is not registered", req.VendorID)
	}

	claim, err := s.apply(ctx, id, EventAssignVendor, false, func(c *models.WarrantyClaim, _ *models.Subscription, now time.Time) {
		c.AssignedVendor = req.VendorID
		c.AssignedBy = req.AdminID
		c.AssignedAt = &now
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyVendorAssignment(ctx, *claim); err != nil {
			s.metrics.NotificationFailed("vendor_assignment")
			s.logger.WarnContext(ctx, "failed to notify vendor of assignment",
				slog.String("claim_id", claim.ID),
				slog.String("vendor_id", claim.AssignedVendor),
				slog.Any("error", err),
			)
		}
	}
	return claim, nil
}

// Complete closes an approved or in-progress claim. When the job was paid online and a vendor
// is assigned, the earning is marked pending in the same write and then handed to the earning
// scheduler; a scheduling failure leaves it pending for ReconcileEarnings.
func (s *Service) Complete(ctx context.Context, id string, req CompleteRequest) (*models.WarrantyClaim, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	claim, err := s.apply(ctx, id, EventComplete, false, func(c *models.WarrantyClaim, _ *models.Subscription, now time.Time) {
		c.CompletedBy = req.AdminID
		c.CompletedAt = &now
		c.CompletionNotes = req.Notes
		if req.Billing != nil {
			billing := *req.Billing
			c.Billing = &billing
			if billing.PaymentMethod == models.PaymentOnline && c.AssignedVendor != "" {
				c.EarningStatus = models.EarningPending
				c.PaymentOrderID = req.PaymentOrderID
			}
		}
	})
	if err != nil {
		return nil, err
	}

	if claim.EarningStatus == models.EarningPending {
		claim.EarningStatus, _ = s.scheduleEarning(ctx, claim)
	}
	return claim, nil
}

// ReconcileEarnings re-schedules the earnings of completed claims still marked pending.
func (s *Service) ReconcileEarnings(ctx context.Context) (ReconcileReport, error) {
	var report ReconcileReport
	pending, err := s.store.ListClaims(ctx, storage.ClaimFilter{
		Status:        models.ClaimCompleted,
		EarningStatus: models.EarningPending,
	})
	if err != nil {
		return report, fmt.Errorf("failed to list claims with pending earnings: %w", err)
	}

	for i := range pending {
		claim := &pending[i]
		report.Scanned++
		if claim.Billing == nil || claim.AssignedVendor == "" {
			s.logger.WarnContext(ctx, "pending earning without billing or vendor", slog.String("claim_id", claim.ID))
			report.Failed++
			continue
		}
		status, err := s.scheduleEarning(ctx, claim)
		switch {
		case err != nil:
			report.Failed++
		case status == models.EarningPosted:
			report.Posted++
		default:
			report.Queued++
		}
	}

	s.logger.InfoContext(ctx, "earning reconciliation finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("posted", report.Posted),
		slog.Int("queued", report.Queued),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}
