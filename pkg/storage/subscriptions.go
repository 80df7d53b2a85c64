package storage

import (
	"context"

	"github.com/chris/amc-warranty-claims/pkg/models"
)

// SubscriptionStore defines the interface for reading and seeding subscriptions.
// Entitlement changes are only written together with a claim, see ClaimStore.
type SubscriptionStore interface {
	// GetSubscription retrieves a subscription by its ID.
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)

	// CreateSubscription stores a new subscription.
	CreateSubscription(ctx context.Context, sub *models.Subscription) (*models.Subscription, error)
}
