package order

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
)

// AssignmentState tracks the tailor hand-off independently of the lifecycle
// status. It is an orthogonal state machine:
//
//	Unassigned ──> PendingAcceptance ──> Accepted
//	                    │    ▲
//	                    ▼    │ (admin re-assigns)
//	              ChangeRequested
//
// A tailor flagging a problem moves the order to ChangeRequested; the order
// stays out of the active queue until an admin re-resolves the assignment.
// Re-assignment of an Accepted order requires an explicit reassign request
// and resets acceptance back to PendingAcceptance.
type AssignmentState int

const (
	// AssignmentUnknown represents an invalid or undefined assignment state.
	AssignmentUnknown AssignmentState = iota

	// Unassigned means no tailor has been picked for the order yet.
	Unassigned

	// PendingAcceptance means a tailor is assigned but has not confirmed.
	PendingAcceptance

	// Accepted means the assigned tailor confirmed the order into their queue.
	Accepted

	// ChangeRequested means the assigned tailor flagged a problem back to the
	// admin. The assignment must be re-resolved before work can start.
	ChangeRequested
)

// getAssignmentStateStrings returns a map of states to their string representations.
func getAssignmentStateStrings() map[AssignmentState]string {
	return map[AssignmentState]string{
		AssignmentUnknown: "Unknown",
		Unassigned:        "Unassigned",
		PendingAcceptance: "PendingAcceptance",
		Accepted:          "Accepted",
		ChangeRequested:   "ChangeRequested",
	}
}

// Validate checks if the AssignmentState value is valid.
func (s AssignmentState) Validate() error {
	if _, ok := getAssignmentStateStrings()[s]; !ok || s == AssignmentUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignmentState",
			fmt.Errorf("%d is not a valid assignment state", s),
		)
	}
	return nil
}

// String returns the human-readable name of the assignment state.
func (s AssignmentState) String() string {
	if str, ok := getAssignmentStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the state to PendingAcceptance.
//
// Plain assignment is allowed from Unassigned and ChangeRequested. An order
// whose tailor already accepted (or is still deciding) can only be moved by
// an explicit reassignment, which resets acceptance.
func (s AssignmentState) Assign(reassign bool) (AssignmentState, error) {
	switch s {
	case Unassigned, ChangeRequested:
		return PendingAcceptance, nil
	case PendingAcceptance, Accepted:
		if reassign {
			return PendingAcceptance, nil
		}
		return AssignmentUnknown, errs.NewInvalidStateError("order", s.String(), "assign a tailor")
	default:
		return AssignmentUnknown, s.Validate()
	}
}

// Accept transitions the state to Accepted.
// Only legal from PendingAcceptance.
func (s AssignmentState) Accept() (AssignmentState, error) {
	if s != PendingAcceptance {
		return AssignmentUnknown, errs.NewInvalidStateError("order", s.String(), "accept the order")
	}

	return Accepted, nil
}

// RequestChange transitions the state to ChangeRequested.
// Only legal from PendingAcceptance: an accepted order is already in the
// tailor's queue and problems there go through notes, not change requests.
func (s AssignmentState) RequestChange() (AssignmentState, error) {
	if s != PendingAcceptance {
		return AssignmentUnknown, errs.NewInvalidStateError("order", s.String(), "request a change")
	}

	return ChangeRequested, nil
}
