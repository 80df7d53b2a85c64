package entitlement

import (
	"fmt"
	"strings"

	"github.com/chris/amc-warranty-claims/pkg/models"
)

// QuotaOverridePolicy controls whether an exhausted entitlement may be bypassed.
type QuotaOverridePolicy string

const (
	// OverrideStrict never bypasses an exhausted entitlement.
	OverrideStrict QuotaOverridePolicy = "strict"

	// OverrideAllowResetForTesting resets an exhausted entitlement to its full limit before debiting.
	// Meant for non-production environments only.
	OverrideAllowResetForTesting QuotaOverridePolicy = "allow-reset-for-testing"
)

// ParseOverridePolicy parses a configured policy name. An empty string means strict.
func ParseOverridePolicy(s string) (QuotaOverridePolicy, error) {
	switch QuotaOverridePolicy(strings.TrimSpace(strings.ToLower(s))) {
	case "", OverrideStrict:
		return OverrideStrict, nil
	case OverrideAllowResetForTesting:
		return OverrideAllowResetForTesting, nil
	default:
		return "", fmt.Errorf("unknown quota override policy %q", s)
	}
}

// Policy bundles the per-category minimum allotments with the override policy.
type Policy struct {
	Minimums map[models.ServiceCategory]int64
	Override QuotaOverridePolicy
}

// DefaultMinimums are the allotments every AMC subscription is guaranteed.
func DefaultMinimums() map[models.ServiceCategory]int64 {
	return map[models.ServiceCategory]int64{
		models.RemoteSupport: 3,
		models.HomeVisit:     2,
		models.WarrantyClaim: 3,
	}
}

// Backfill ensures every known category carries at least its policy minimum and that the usage
// counter map exists. It is applied once when a subscription is loaded. It reports whether
// anything changed.
func (p Policy) Backfill(sub *models.Subscription) bool {
	changed := false
	if sub.ServiceUsage == nil {
		sub.ServiceUsage = make(map[models.ServiceCategory]int64)
		changed = true
	}
	for _, category := range models.ServiceCategories {
		if EnsurePolicyMinimum(sub, category, p.Minimums[category]) {
			changed = true
		}
	}
	return changed
}

// Reserve debits one unit of category, applying the override policy when the entitlement is
// exhausted. It reports whether an override reset was needed.
func (p Policy) Reserve(sub *models.Subscription, category models.ServiceCategory) (bool, error) {
	if HasRemaining(sub, category) {
		return false, Debit(sub, category)
	}
	if p.Override != OverrideAllowResetForTesting {
		return false, Debit(sub, category)
	}
	Reset(sub, category)
	return true, Debit(sub, category)
}
