package models

import (
	"time"
)

// ServiceCategory identifies which entitlement a claim draws from.
type ServiceCategory string

const (
	RemoteSupport ServiceCategory = "remote_support"
	HomeVisit     ServiceCategory = "home_visit"
	WarrantyClaim ServiceCategory = "warranty_claim"
)

// ServiceCategories is the closed set of categories a subscription carries entitlements for.
var ServiceCategories = []ServiceCategory{RemoteSupport, HomeVisit, WarrantyClaim}

// Valid reports whether c is one of the known categories.
func (c ServiceCategory) Valid() bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Entitlement is the quota a subscription holds for one service category.
// Remaining is kept equal to max(0, Limit-Used) unless Unlimited is set.
type Entitlement struct {
	Limit     int64 `json:"limit" dynamodbav:"limit"`
	Unlimited bool  `json:"unlimited" dynamodbav:"unlimited"`
	Used      int64 `json:"used" dynamodbav:"used"`
	Remaining int64 `json:"remaining" dynamodbav:"remaining"`
}

// Subscription represents an active AMC service contract.
type Subscription struct {
	ID           string                          `json:"id" dynamodbav:"id"`
	UserID       string                          `json:"user_id" dynamodbav:"user_id"`
	PlanName     string                          `json:"plan_name" dynamodbav:"plan_name"`
	StartDate    time.Time                       `json:"start_date" dynamodbav:"start_date"`
	EndDate      time.Time                       `json:"end_date" dynamodbav:"end_date"`
	Entitlements map[ServiceCategory]Entitlement `json:"entitlements" dynamodbav:"entitlements"`
	// ServiceUsage counts approved claims per category. It is separate from Entitlement.Used,
	// which is taken at submission.
	ServiceUsage map[ServiceCategory]int64 `json:"service_usage" dynamodbav:"service_usage"`
	Version      int64                     `json:"version" dynamodbav:"version"`
	CreatedAt    time.Time                 `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at" dynamodbav:"updated_at"`
}

// Expired reports whether the subscription's end date has passed.
func (s *Subscription) Expired(now time.Time) bool {
	return s.EndDate.Before(now)
}

// Clone returns a deep copy so callers can stage changes without touching the original.
func (s *Subscription) Clone() *Subscription {
	cp := *s
	cp.Entitlements = make(map[ServiceCategory]Entitlement, len(s.Entitlements))
	for k, v := range s.Entitlements {
		cp.Entitlements[k] = v
	}
	cp.ServiceUsage = make(map[ServiceCategory]int64, len(s.ServiceUsage))
	for k, v := range s.ServiceUsage {
		cp.ServiceUsage[k] = v
	}
	return &cp
}
