package claims

import (
	"github.com/chris/amc-warranty-claims/pkg/models"
)

// SubmitRequest opens a claim against a subscription the user owns.
type SubmitRequest struct {
	UserID           string                 `json:"-" validate:"required"`
	SubscriptionID   string                 `json:"subscription_id" validate:"required"`
	ServiceCategory  models.ServiceCategory `json:"service_category" validate:"required"`
	IssueDescription string                 `json:"issue_description" validate:"required,max=2000"`
	PlanName         string                 `json:"plan_name,omitempty"`
}

type ApproveRequest struct {
	AdminID    string `json:"-" validate:"required"`
	AdminNotes string `json:"admin_notes,omitempty"`
}

type RejectRequest struct {
	AdminID    string `json:"-" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
	AdminNotes string `json:"admin_notes,omitempty"`
}

type AssignRequest struct {
	AdminID  string `json:"-" validate:"required"`
	VendorID string `json:"vendor_id" validate:"required"`
}

// CompleteRequest closes a claim. Billing is optional; an online-paid billing on a claim with an
// assigned vendor produces a vendor earning. PaymentOrderID is the gateway order the customer
// pays through; a verified payment for that order releases the same earning.
type CompleteRequest struct {
	AdminID        string             `json:"-" validate:"required"`
	Notes          string             `json:"completion_notes,omitempty"`
	Billing        *models.JobBilling `json:"billing,omitempty"`
	PaymentOrderID string             `json:"payment_order_id,omitempty" validate:"omitempty,max=128"`
}

// ListQuery selects a page of claims. An empty UserID lists every user's claims.
type ListQuery struct {
	UserID    string
	Status    models.ClaimStatus
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// ClaimPage is one page of a claim listing.
type ClaimPage struct {
	Claims     []models.WarrantyClaim `json:"claims"`
	Pagination Pagination             `json:"pagination"`
}

// ReconcileReport summarises a pass over completed claims whose earning is still pending.
type ReconcileReport struct {
	Scanned int `json:"scanned"`
	Posted  int `json:"posted"`
	Queued  int `json:"queued"`
	Failed  int `json:"failed"`
}
