package claims

import (
	"fmt"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/models"
)

// Event is an action applied to a claim.
type Event string

const (
	EventSubmit       Event = "submit"
	EventApprove      Event = "approve"
	EventReject       Event = "reject"
	EventAssignVendor Event = "assign_vendor"
	EventComplete     Event = "complete"
)

// transitions maps a current status and event to the next status. The empty status is a claim
// that does not exist yet.
var transitions = map[models.ClaimStatus]map[Event]models.ClaimStatus{
	"": {
		EventSubmit: models.ClaimPending,
	},
	models.ClaimPending: {
		EventApprove: models.ClaimApproved,
		EventReject:  models.ClaimRejected,
	},
	models.ClaimApproved: {
		EventAssignVendor: models.ClaimInProgress,
		EventComplete:     models.ClaimCompleted,
	},
	models.ClaimInProgress: {
		EventComplete: models.ClaimCompleted,
	},
}

// Transition returns the status a claim moves to when event is applied in status from.
// Every pair not in the table yields ErrInvalidTransition.
func Transition(from models.ClaimStatus, event Event) (models.ClaimStatus, error) {
	if to, ok := transitions[from][event]; ok {
		return to, nil
	}
	if from == "" {
		return "", fmt.Errorf("cannot %s a claim that does not exist: %w", event, apperrors.ErrInvalidTransition)
	}
	return "", fmt.Errorf("cannot %s a claim that is %s: %w", event, from, apperrors.ErrInvalidTransition)
}
