package websockets

import "time"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeVendorAssignment tells a vendor a claim was assigned to them.
	MessageTypeVendorAssignment MessageType = "vendorAssignment"
	// MessageTypeWalletUpdate tells a vendor their wallet balance moved.
	MessageTypeWalletUpdate MessageType = "walletUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// VendorAssignmentPayload is the payload for a vendorAssignment message.
type VendorAssignmentPayload struct {
	ClaimID          string    `json:"claim_id"`
	SubscriptionID   string    `json:"subscription_id"`
	ServiceCategory  string    `json:"service_category"`
	IssueDescription string    `json:"issue_description"`
	AssignedBy       string    `json:"assigned_by"`
	AssignedAt       time.Time `json:"assigned_at"`
}

// WalletUpdatePayload is the payload for a walletUpdate message.
type WalletUpdatePayload struct {
	VendorID string `json:"vendor_id"`
	CaseID   string `json:"case_id"`
	Kind     string `json:"kind"`
	Change   int64  `json:"change"`
}
