package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/claims"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidSignature is returned when the gateway signature does not match.
var ErrInvalidSignature = errors.New("payment signature mismatch")

// ErrAmountMismatch is returned when the paid amount differs from the billed amount of the claim
// the order belongs to.
var ErrAmountMismatch = errors.New("paid amount does not match billing")

// VerifyRequest is the gateway callback. Only the signed order and payment ids and the paid amount
// are read; the vendor, case and billing come from the claim completed with that order.
type VerifyRequest struct {
	OrderID       string               `json:"orderId" validate:"required"`
	PaymentID     string               `json:"paymentId" validate:"required"`
	Signature     string               `json:"signature" validate:"required"`
	Amount        int64                `json:"amount" validate:"gte=0"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" validate:"required,oneof=online cash"`
}

// VerifyResult reports the outcome of a verified payment.
type VerifyResult struct {
	OrderID       string               `json:"orderId"`
	PaymentID     string               `json:"paymentId"`
	Verified      bool                 `json:"verified"`
	CaseID        string               `json:"caseId,omitempty"`
	EarningStatus models.EarningStatus `json:"earningStatus,omitempty"`
}

// Service verifies payments and hands earnings to the scheduler.
type Service struct {
	verifier *Verifier
	claims   storage.ClaimReader
	earnings claims.EarningScheduler
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a payment Service. Orders are resolved to claims through claimReader.
func NewService(verifier *Verifier, claimReader storage.ClaimReader, earnings claims.EarningScheduler, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		verifier: verifier,
		claims:   claimReader,
		earnings: earnings,
		validate: validator.New(),
		logger:   logger,
	}
}

// Verify checks the callback signature and, for an online payment of an order attached to a
// completed claim, schedules the earning of the claim's vendor. Earnings are keyed by vendor and
// case, so a repeated callback does not credit twice; a scheduling failure is reported so the
// gateway retries the callback.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}
	if !s.verifier.Verify(req.OrderID, req.PaymentID, req.Signature) {
		s.logger.WarnContext(ctx, "payment signature rejected", slog.String("order_id", req.OrderID))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrInvalidSignature)
	}

	result := &VerifyResult{OrderID: req.OrderID, PaymentID: req.PaymentID, Verified: true}
	if req.PaymentMethod != models.PaymentOnline {
		return result, nil
	}

	claim, err := s.claimForOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		s.logger.InfoContext(ctx, "verified payment is not tied to a vendor job", slog.String("order_id", req.OrderID))
		return result, nil
	}
	result.CaseID = claim.ID

	if req.Amount != claim.Billing.BillingAmount {
		s.logger.WarnContext(ctx, "paid amount differs from claim billing",
			slog.String("order_id", req.OrderID),
			slog.String("case_id", claim.ID),
			slog.Int64("paid", req.Amount),
			slog.Int64("billed", claim.Billing.BillingAmount),
		)
		return nil, fmt.Errorf("%w: %v: order %s", apperrors.ErrValidation, ErrAmountMismatch, req.OrderID)
	}

	billing := *claim.Billing
	billing.PaymentMethod = models.PaymentOnline
	status, err := s.earnings.ScheduleEarning(ctx, wallet.NewEarningRequest(claim.AssignedVendor, claim.ID, billing))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to schedule earning for verified payment",
			slog.String("order_id", req.OrderID),
			slog.String("case_id", claim.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: earning for case %s: %v", apperrors.ErrDependencyFailure, claim.ID, err)
	}

	result.EarningStatus = status
	s.logger.InfoContext(ctx, "payment verified",
		slog.String("order_id", req.OrderID),
		slog.String("case_id", claim.ID),
		slog.String("earning_status", string(status)),
	)
	return result, nil
}

// claimForOrder returns the completed, vendor-assigned claim billed through orderID, or nil when
// the order belongs to no such claim.
func (s *Service) claimForOrder(ctx context.Context, orderID string) (*models.WarrantyClaim, error) {
	found, err := s.claims.ListClaims(ctx, storage.ClaimFilter{
		Status:         models.ClaimCompleted,
		PaymentOrderID: orderID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: claim lookup for order %s: %v", apperrors.ErrDependencyFailure, orderID, err)
	}
	for i := range found {
		c := &found[i]
		if c.Billing != nil && c.AssignedVendor != "" {
			return c, nil
		}
	}
	return nil, nil
}
