package storage

import (
	"context"

	"github.com/chris/amc-warranty-claims/pkg/models"
)

// ClaimFilter narrows a claim listing. Zero-valued fields do not filter.
type ClaimFilter struct {
	UserID         string
	SubscriptionID string
	Status         models.ClaimStatus
	EarningStatus  models.EarningStatus
	PaymentOrderID string
}

// ClaimReader defines the interface for reading claims.
type ClaimReader interface {
	// GetClaim retrieves a claim by its ID.
	GetClaim(ctx context.Context, id string) (*models.WarrantyClaim, error)

	// ListClaims retrieves every claim matching the filter, newest first.
	ListClaims(ctx context.Context, filter ClaimFilter) ([]models.WarrantyClaim, error)

	// CountClaims counts the claims matching the filter.
	CountClaims(ctx context.Context, filter ClaimFilter) (int, error)
}

// ClaimWriter defines the interface for claim mutations.
//
// When a subscription is passed, its entitlements and usage counters are written in the same
// atomic operation as the claim, conditional on sub.Version still matching the stored version.
// On success sub.Version is advanced.
type ClaimWriter interface {
	// CreateClaim stores a new claim and the debited subscription.
	CreateClaim(ctx context.Context, claim *models.WarrantyClaim, sub *models.Subscription) error

	// UpdateClaim replaces a claim that is still in status from, optionally writing sub.
	UpdateClaim(ctx context.Context, claim *models.WarrantyClaim, from models.ClaimStatus, sub *models.Subscription) error

	// SetEarningStatus records whether a completed claim's earning reached the wallet ledger.
	SetEarningStatus(ctx context.Context, claimID string, status models.EarningStatus) error
}

// ClaimStore combines the reader and writer interfaces.
type ClaimStore interface {
	ClaimReader
	ClaimWriter
}
