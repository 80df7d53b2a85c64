// Package entitlement checks, debits and credits quota units on a subscription's entitlements.
//
// The functions here only mutate the in-memory subscription. Persisting the change atomically
// (conditional on the subscription version) is the storage layer's job.
package entitlement

import (
	"fmt"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/models"
)

// ErrQuotaExhausted is returned by Debit when no units remain.
var ErrQuotaExhausted = apperrors.ErrQuotaExhausted

// EnsurePolicyMinimum raises a missing or too-low numeric limit to minimum, keeping Used.
// It reports whether the entitlement changed.
func EnsurePolicyMinimum(sub *models.Subscription, category models.ServiceCategory, minimum int64) bool {
	if sub.Entitlements == nil {
		sub.Entitlements = make(map[models.ServiceCategory]models.Entitlement)
	}

	ent, ok := sub.Entitlements[category]
	if ok && (ent.Unlimited || ent.Limit >= minimum) {
		return false
	}

	ent.Limit = minimum
	if ent.Used < 0 {
		ent.Used = 0
	}
	ent.Remaining = remaining(ent)
	sub.Entitlements[category] = ent
	return true
}

// HasRemaining reports whether category can be debited at least once.
func HasRemaining(sub *models.Subscription, category models.ServiceCategory) bool {
	ent, ok := sub.Entitlements[category]
	if !ok {
		return false
	}
	return ent.Unlimited || ent.Remaining > 0
}

// Debit consumes one unit. It returns ErrQuotaExhausted, leaving the subscription untouched,
// when HasRemaining is false.
func Debit(sub *models.Subscription, category models.ServiceCategory) error {
	if !HasRemaining(sub, category) {
		return fmt.Errorf("%w: no %s units remaining on subscription %s", ErrQuotaExhausted, category, sub.ID)
	}

	ent := sub.Entitlements[category]
	ent.Used++
	if !ent.Unlimited {
		ent.Remaining = remaining(ent)
	}
	sub.Entitlements[category] = ent
	return nil
}

// Credit refunds one unit, flooring Used at zero and capping Remaining at Limit.
func Credit(sub *models.Subscription, category models.ServiceCategory) {
	ent, ok := sub.Entitlements[category]
	if !ok {
		return
	}

	if ent.Used > 0 {
		ent.Used--
	}
	if !ent.Unlimited {
		ent.Remaining = remaining(ent)
	}
	sub.Entitlements[category] = ent
}

// Reset clears consumption for category. Only the allow-reset override policy calls it.
func Reset(sub *models.Subscription, category models.ServiceCategory) {
	ent, ok := sub.Entitlements[category]
	if !ok {
		return
	}
	ent.Used = 0
	if !ent.Unlimited {
		ent.Remaining = ent.Limit
	}
	sub.Entitlements[category] = ent
}

func remaining(ent models.Entitlement) int64 {
	r := ent.Limit - ent.Used
	if r < 0 {
		return 0
	}
	if r > ent.Limit {
		return ent.Limit
	}
	return r
}
