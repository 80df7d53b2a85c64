package websockets

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/models"
)

// Notifier turns domain events into WebSocket messages for vendors.
type Notifier struct {
	publisher Publisher
}

// NewNotifier creates a Notifier on top of a Publisher.
func NewNotifier(publisher Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

// NotifyVendorAssignment tells the assigned vendor about the claim.
func (n *Notifier) NotifyVendorAssignment(ctx context.Context, claim models.WarrantyClaim) error {
	var assignedAt time.Time
	if claim.AssignedAt != nil {
		assignedAt = *claim.AssignedAt
	}

	err := n.publisher.Publish(ctx, claim.AssignedVendor, Message{
		Type: MessageTypeVendorAssignment,
		Payload: VendorAssignmentPayload{
			ClaimID:          claim.ID,
			SubscriptionID:   claim.SubscriptionID,
			ServiceCategory:  string(claim.ServiceCategory),
			IssueDescription: claim.IssueDescription,
			AssignedBy:       claim.AssignedBy,
			AssignedAt:       assignedAt,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish vendor assignment: %w", err)
	}
	return nil
}

// NotifyWalletChange tells a vendor about a ledger entry posted to their wallet.
func (n *Notifier) NotifyWalletChange(ctx context.Context, entry models.WalletLedgerEntry) error {
	err := n.publisher.Publish(ctx, entry.VendorID, Message{
		Type: MessageTypeWalletUpdate,
		Payload: WalletUpdatePayload{
			VendorID: entry.VendorID,
			CaseID:   entry.CaseID,
			Kind:     string(entry.Kind),
			Change:   entry.Amount,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish wallet update: %w", err)
	}
	return nil
}
