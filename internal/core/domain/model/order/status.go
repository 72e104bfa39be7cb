package order

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a tailoring order.
// It implements a state machine over the fixed forward chain
//
//	OrderPlaced ──> Cutting ──> Stitching ──> Trial ──> Ready ──> Delivered
//
// with Cancelled reachable from every non-terminal state. Delivered and
// Cancelled are terminal. There is no skipping and no backward move: the only
// legal forward transition from any status is to its immediate successor.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and the API.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// OrderPlaced is the initial status when an order is first created.
	// Orders in this status are waiting for a tailor to accept and start work.
	OrderPlaced

	// Cutting indicates the fabric is being cut.
	Cutting

	// Stitching indicates the garment is being stitched.
	Stitching

	// Trial indicates the garment is ready for a customer fitting.
	Trial

	// Ready indicates the garment is finished and awaiting pickup.
	// Reaching Ready is the billable event: exactly one bill exists from here on.
	Ready

	// Delivered indicates the customer has received the garment.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was called off before delivery.
	// This is a terminal state reachable from every non-terminal status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		OrderPlaced:   "OrderPlaced",
		Cutting:       "Cutting",
		Stitching:     "Stitching",
		Trial:         "Trial",
		Ready:         "Ready",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getForwardEdges returns the immediate successor for each status on the
// forward chain. Terminal statuses have no successor.
func getForwardEdges() map[Status]Status {
	return map[Status]Status{
		OrderPlaced: Cutting,
		Cutting:     Stitching,
		Stitching:   Trial,
		Trial:       Ready,
		Ready:       Delivered,
	}
}

// StatusFromString parses a status name as it appears on the wire.
// Returns an error for unknown names and for "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the immediate successor of the status on the forward chain.
// The second return value is false when the status has no successor
// (Delivered, Cancelled, or an invalid value).
func (s Status) Next() (Status, bool) {
	next, ok := getForwardEdges()[s]
	return next, ok
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsBillable reports whether a bill must exist for an order in this status.
// Billable statuses are Ready and Delivered.
func (s Status) IsBillable() bool {
	return s == Ready || s == Delivered
}

// IsActive reports whether the order still counts toward the active workload.
// Delivered and Cancelled orders are not active.
func (s Status) IsActive() bool {
	return !s.IsTerminal() && s != StatusUnknown
}

// Advance transitions the status to the requested one.
//
// The move is legal only when requested is the immediate successor of the
// current status on the forward chain. Any other request, including skips,
// backward moves and transitions out of a terminal status, is rejected with
// an InvalidTransitionError carrying both the current and the requested
// status so clients can refresh their snapshot.
//
// Example:
//
//	next, err := current.Advance(order.Stitching)
//	if err != nil {
//	    // requested was not the immediate successor
//	}
func (s Status) Advance(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return StatusUnknown, err
	}

	next, ok := s.Next()
	if !ok || next != requested {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), requested.String())
	}

	return next, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from every status except Delivered. Cancelled -> Cancelled is
// returned as a plain transition here; the aggregate turns it into a no-op
// so repeated cancellation stays idempotent.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}
