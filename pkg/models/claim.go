package models

import "time"

// ClaimStatus defines the possible states of a warranty claim.
type ClaimStatus string

const (
	ClaimPending    ClaimStatus = "pending"
	ClaimApproved   ClaimStatus = "approved"
	ClaimRejected   ClaimStatus = "rejected"
	ClaimInProgress ClaimStatus = "in_progress"
	ClaimCompleted  ClaimStatus = "completed"
)

// EarningStatus tracks whether a completed claim's vendor earning reached the wallet ledger.
type EarningStatus string

const (
	EarningNotApplicable EarningStatus = ""
	EarningPending       EarningStatus = "pending"
	EarningPosted        EarningStatus = "posted"
)

// PaymentMethod describes how the customer paid for a job.
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentCash   PaymentMethod = "cash"
)

// JobBilling is the billing breakdown of a completed job, in minor currency units.
type JobBilling struct {
	BillingAmount    int64         `json:"billing_amount" dynamodbav:"billing_amount" validate:"gte=0"`
	SpareAmount      int64         `json:"spare_amount" dynamodbav:"spare_amount" validate:"gte=0"`
	TravellingAmount int64         `json:"travelling_amount" dynamodbav:"travelling_amount" validate:"gte=0"`
	BookingAmount    int64         `json:"booking_amount" dynamodbav:"booking_amount" validate:"gte=0"`
	PaymentMethod    PaymentMethod `json:"payment_method" dynamodbav:"payment_method" validate:"required,oneof=online cash"`
	GSTIncluded      bool          `json:"gst_included" dynamodbav:"gst_included"`
}

// WarrantyClaim is a request to consume one unit of a subscription entitlement.
type WarrantyClaim struct {
	ID               string          `json:"id" dynamodbav:"id"`
	SubscriptionID   string          `json:"subscription_id" dynamodbav:"subscription_id"`
	UserID           string          `json:"user_id" dynamodbav:"user_id"`
	PlanName         string          `json:"plan_name,omitempty" dynamodbav:"plan_name,omitempty"`
	ServiceCategory  ServiceCategory `json:"service_category" dynamodbav:"service_category"`
	IssueDescription string          `json:"issue_description" dynamodbav:"issue_description"`
	Status           ClaimStatus     `json:"status" dynamodbav:"status"`
	AdminNotes       string          `json:"admin_notes,omitempty" dynamodbav:"admin_notes,omitempty"`

	ApprovedBy      string     `json:"approved_by,omitempty" dynamodbav:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty" dynamodbav:"approved_at,omitempty"`
	RejectedBy      string     `json:"rejected_by,omitempty" dynamodbav:"rejected_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty" dynamodbav:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty" dynamodbav:"rejection_reason,omitempty"`
	AssignedVendor  string     `json:"assigned_vendor,omitempty" dynamodbav:"assigned_vendor,omitempty"`
	AssignedBy      string     `json:"assigned_by,omitempty" dynamodbav:"assigned_by,omitempty"`
	AssignedAt      *time.Time `json:"assigned_at,omitempty" dynamodbav:"assigned_at,omitempty"`
	CompletedBy     string     `json:"completed_by,omitempty" dynamodbav:"completed_by,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" dynamodbav:"completed_at,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty" dynamodbav:"completion_notes,omitempty"`

	Billing        *JobBilling   `json:"billing,omitempty" dynamodbav:"billing,omitempty"`
	PaymentOrderID string        `json:"payment_order_id,omitempty" dynamodbav:"payment_order_id,omitempty"`
	EarningStatus  EarningStatus `json:"earning_status,omitempty" dynamodbav:"earning_status,omitempty"`

	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}
