// Package wallet posts vendor earnings and penalties to the append-only wallet ledger.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/earning"
	"github.com/chris/amc-warranty-claims/pkg/metrics"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrDuplicateEarning is returned when an earning for the same vendor and case was already posted.
var ErrDuplicateEarning = errors.New("earning already posted for this case")

// EarningRequest carries a completed job's billing breakdown for one vendor.
type EarningRequest struct {
	VendorID         string               `json:"vendor_id" validate:"required"`
	CaseID           string               `json:"case_id" validate:"required"`
	BillingAmount    int64                `json:"billing_amount" validate:"gte=0"`
	SpareAmount      int64                `json:"spare_amount" validate:"gte=0"`
	TravellingAmount int64                `json:"travelling_amount" validate:"gte=0"`
	BookingAmount    int64                `json:"booking_amount" validate:"gte=0"`
	PaymentMethod    models.PaymentMethod `json:"payment_method" validate:"required,oneof=online cash"`
	GSTIncluded      bool                 `json:"gst_included"`
	Description      string               `json:"description,omitempty"`
}

// NewEarningRequest builds the request for a claim's billing.
func NewEarningRequest(vendorID, caseID string, b models.JobBilling) EarningRequest {
	return EarningRequest{
		VendorID:         vendorID,
		CaseID:           caseID,
		BillingAmount:    b.BillingAmount,
		SpareAmount:      b.SpareAmount,
		TravellingAmount: b.TravellingAmount,
		BookingAmount:    b.BookingAmount,
		PaymentMethod:    b.PaymentMethod,
		GSTIncluded:      b.GSTIncluded,
		Description:      fmt.Sprintf("Earning for case %s", caseID),
	}
}

// Drift compares a wallet's cached balance with the sum of its ledger entries.
type Drift struct {
	VendorID      string `json:"vendor_id"`
	CachedBalance int64  `json:"cached_balance"`
	LedgerBalance int64  `json:"ledger_balance"`
	Difference    int64  `json:"difference"`
}

// ChangeNotifier is told about every entry written to a wallet.
type ChangeNotifier interface {
	NotifyWalletChange(ctx context.Context, entry models.WalletLedgerEntry) error
}

// Ledger is the wallet surface used by the claim workflow and the HTTP handlers.
type Ledger interface {
	CreateWallet(ctx context.Context, vendorID, name string) (*models.VendorWallet, error)
	PostEarning(ctx context.Context, req EarningRequest) (*models.WalletLedgerEntry, error)
	ApplyPenalty(ctx context.Context, vendorID, caseID string, amount int64, reason string) (*models.WalletLedgerEntry, error)
	GetBalance(ctx context.Context, vendorID string) (int64, error)
	Entries(ctx context.Context, vendorID string) ([]models.WalletLedgerEntry, error)
	Reconcile(ctx context.Context, vendorID string) (Drift, error)
	VendorExists(ctx context.Context, vendorID string) (bool, error)
}

// Service implements Ledger on top of a WalletLedgerStore.
type Service struct {
	store    storage.WalletLedgerStore
	fees     earning.FeeSchedule
	notifier ChangeNotifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

func WithNotifier(n ChangeNotifier) Option { return func(s *Service) { s.notifier = n } }

func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.logger = l } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// NewService creates a wallet Service.
func NewService(store storage.WalletLedgerStore, fees earning.FeeSchedule, opts ...Option) *Service {
	s := &Service{
		store:    store,
		fees:     fees,
		logger:   slog.Default(),
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Ledger = (*Service)(nil)

// EarningEntryID is the ledger entry ID of the earning for a vendor and case. At most one such
// entry can exist.
func EarningEntryID(vendorID, caseID string) string {
	return "earning#" + vendorID + "#" + caseID
}

// CreateWallet onboards a vendor with an empty wallet.
func (s *Service) CreateWallet(ctx context.Context, vendorID, name string) (*models.VendorWallet, error) {
	if vendorID == "" {
		return nil, apperrors.Validation("vendor id is required")
	}

	now := s.now()
	wallet, err := s.store.CreateWallet(ctx, &models.VendorWallet{
		VendorID:  vendorID,
		Name:      name,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, apperrors.Validation("vendor %s already has a wallet", vendorID)
		}
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return wallet, nil
}

// PostEarning calculates the vendor's earning for a job and appends it to their wallet.
func (s *Service) PostEarning(ctx context.Context, req EarningRequest) (*models.WalletLedgerEntry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	result := earning.Calculate(earning.Input{
		BillingAmount:    req.BillingAmount,
		SpareAmount:      req.SpareAmount,
		TravellingAmount: req.TravellingAmount,
		BookingAmount:    req.BookingAmount,
		PaymentMethod:    req.PaymentMethod,
		GSTIncluded:      req.GSTIncluded,
	}, s.fees)

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Earning for case %s", req.CaseID)
	}

	entry := &models.WalletLedgerEntry{
		EntryID:          EarningEntryID(req.VendorID, req.CaseID),
		VendorID:         req.VendorID,
		CaseID:           req.CaseID,
		Kind:             models.EntryEarning,
		BillingAmount:    req.BillingAmount,
		SpareAmount:      req.SpareAmount,
		TravellingAmount: req.TravellingAmount,
		BookingAmount:    req.BookingAmount,
		PaymentMethod:    req.PaymentMethod,
		GSTIncluded:      req.GSTIncluded,
		CalculatedAmount: result.CalculatedAmount,
		GSTAmount:        result.GSTAmount,
		Amount:           result.CalculatedAmount,
		Description:      description,
		Timestamp:        s.now(),
	}

	if err := s.store.AppendEntry(ctx, entry); err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateEntry):
			return nil, fmt.Errorf("%w: vendor %s case %s", ErrDuplicateEarning, req.VendorID, req.CaseID)
		case errors.Is(err, storage.ErrNotFound):
			s.metrics.EarningFailed("no_wallet")
			return nil, fmt.Errorf("vendor %s has no wallet: %w", req.VendorID, apperrors.ErrNotFound)
		default:
			s.metrics.EarningFailed("store")
			return nil, fmt.Errorf("failed to post earning: %w", err)
		}
	}

	s.metrics.EarningPosted(string(req.PaymentMethod), entry.Amount)
	s.logger.InfoContext(ctx, "earning posted",
		slog.String("vendor_id", entry.VendorID),
		slog.String("case_id", entry.CaseID),
		slog.Int64("amount", entry.Amount),
		slog.Int64("gst", entry.GSTAmount),
	)
	s.notify(ctx, *entry)
	return entry, nil
}

// ApplyPenalty deducts amount from a vendor's wallet.
func (s *Service) ApplyPenalty(ctx context.Context, vendorID, caseID string, amount int64, reason string) (*models.WalletLedgerEntry, error) {
	if vendorID == "" {
		return nil, apperrors.Validation("vendor id is required")
	}
	if amount <= 0 {
		return nil, apperrors.Validation("penalty amount must be positive")
	}
	if reason == "" {
		reason = "Penalty"
	}

	entry := &models.WalletLedgerEntry{
		EntryID:     uuid.New().String(),
		VendorID:    vendorID,
		CaseID:      caseID,
		Kind:        models.EntryPenalty,
		Amount:      -amount,
		Description: reason,
		Timestamp:   s.now(),
	}

	if err := s.store.AppendEntry(ctx, entry); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("vendor %s has no wallet: %w", vendorID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to apply penalty: %w", err)
	}

	s.metrics.PenaltyApplied()
	s.logger.InfoContext(ctx, "penalty applied", slog.String("vendor_id", vendorID), slog.Int64("amount", amount))
	s.notify(ctx, *entry)
	return entry, nil
}

// GetBalance returns the vendor's cached balance. Vendors without a wallet have a zero balance.
func (s *Service) GetBalance(ctx context.Context, vendorID string) (int64, error) {
	wallet, err := s.store.GetWallet(ctx, vendorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet.Balance, nil
}

// Entries returns the vendor's ledger, newest first.
func (s *Service) Entries(ctx context.Context, vendorID string) ([]models.WalletLedgerEntry, error) {
	entries, err := s.store.ListEntries(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

// Reconcile folds the vendor's ledger and compares it with the cached balance.
func (s *Service) Reconcile(ctx context.Context, vendorID string) (Drift, error) {
	wallet, err := s.store.GetWallet(ctx, vendorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Drift{}, fmt.Errorf("vendor %s has no wallet: %w", vendorID, apperrors.ErrNotFound)
		}
		return Drift{}, fmt.Errorf("failed to get wallet: %w", err)
	}
	entries, err := s.Entries(ctx, vendorID)
	if err != nil {
		return Drift{}, err
	}

	var sum int64
	for _, e := range entries {
		sum += e.Amount
	}
	drift := Drift{
		VendorID:      vendorID,
		CachedBalance: wallet.Balance,
		LedgerBalance: sum,
		Difference:    wallet.Balance - sum,
	}
	if drift.Difference != 0 {
		s.logger.WarnContext(ctx, "wallet balance drift", slog.String("vendor_id", vendorID), slog.Int64("difference", drift.Difference))
	}
	return drift, nil
}

// VendorExists reports whether the vendor has been onboarded with a wallet.
func (s *Service) VendorExists(ctx context.Context, vendorID string) (bool, error) {
	if _, err := s.store.GetWallet(ctx, vendorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up vendor: %w", err)
	}
	return true, nil
}

func (s *Service) notify(ctx context.Context, entry models.WalletLedgerEntry) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyWalletChange(ctx, entry); err != nil {
		s.metrics.NotificationFailed("wallet_update")
		s.logger.WarnContext(ctx, "failed to notify wallet change", slog.String("vendor_id", entry.VendorID), slog.Any("error", err))
	}
}
