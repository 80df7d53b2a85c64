package models

import "time"

// EntryKind distinguishes the reason a ledger entry moved a vendor's balance.
type EntryKind string

const (
	EntryEarning EntryKind = "earning"
	EntryPenalty EntryKind = "penalty"
)

// VendorWallet holds the cached running balance of a vendor.
type VendorWallet struct {
	VendorID  string    `json:"vendor_id" dynamodbav:"vendor_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Balance   int64     `json:"balance" dynamodbav:"balance"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// WalletLedgerEntry is an immutable record of one change to a vendor's balance.
// Amount is the signed effect on the balance: positive for earnings, negative for penalties.
type WalletLedgerEntry struct {
	EntryID          string        `json:"entry_id" dynamodbav:"entry_id"`
	VendorID         string        `json:"vendor_id" dynamodbav:"vendor_id"`
	CaseID           string        `json:"case_id" dynamodbav:"case_id"`
	Kind             EntryKind     `json:"kind" dynamodbav:"kind"`
	BillingAmount    int64         `json:"billing_amount" dynamodbav:"billing_amount"`
	SpareAmount      int64         `json:"spare_amount" dynamodbav:"spare_amount"`
	TravellingAmount int64         `json:"travelling_amount" dynamodbav:"travelling_amount"`
	BookingAmount    int64         `json:"booking_amount" dynamodbav:"booking_amount"`
	PaymentMethod    PaymentMethod `json:"payment_method,omitempty" dynamodbav:"payment_method,omitempty"`
	GSTIncluded      bool          `json:"gst_included" dynamodbav:"gst_included"`
	CalculatedAmount int64         `json:"calculated_amount" dynamodbav:"calculated_amount"`
	GSTAmount        int64         `json:"gst_amount" dynamodbav:"gst_amount"`
	Amount           int64         `json:"amount" dynamodbav:"amount"`
	Description      string        `json:"description" dynamodbav:"description"`
	Timestamp        time.Time     `json:"timestamp" dynamodbav:"timestamp"`
}
