package order

import (
	"errors"
	"fmt"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Note is a single entry in the order's append-only note trail.
type Note struct {
	AuthorID kernel.UUID
	Text     string
	At       time.Time
}

// Order represents a tailoring order. It is the aggregate root that manages
// the order lifecycle from creation through tailor hand-off to delivery.
//
// Order maintains these invariants:
//   - status moves only along the fixed forward chain, or to Cancelled
//   - the assignment track gates production: no work starts before the
//     assigned tailor accepts
//   - a tailor reference is set before the order leaves OrderPlaced
//   - a Cancelled or Delivered order accepts no further transitions
//   - notes are append-only and never affect status
//
// The struct uses private fields to ensure encapsulation; persistence
// rehydrates it through RestoreOrder. The version field backs the store's
// optimistic-concurrency check: two racing writers load the same version and
// exactly one conditional update wins.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	// tailorID is the assigned tailor (nil while unassigned)
	tailorID   *kernel.UUID
	assignment AssignmentState
	status     Status

	itemType     string
	measurements Measurements
	fabric       Fabric
	notes        []Note

	expectedDelivery time.Time
	totalAmount      float64

	createdAt time.Time
	startedAt *time.Time
	startedBy *kernel.UUID

	version int

	isConstructed bool
}

// NewOrder creates a new Order in OrderPlaced status with no tailor assigned.
// This is the only way to create a valid new Order.
//
// All descriptive fields are validated: the item type is required, the
// measurements must name at least one positive dimension, the fabric must be
// a constructed value object, the total amount must be positive and the
// expected delivery must not lie before the day the order is created.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	itemType string,
	measurements Measurements,
	fabric Fabric,
	expectedDelivery time.Time,
	totalAmount float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        OrderPlaced,
		assignment:    Unassigned,
		createdAt:     createdAt,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItemType(itemType),
		o.setMeasurements(measurements),
		o.setFabric(fabric),
		o.setExpectedDelivery(expectedDelivery, createdAt),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order back into the
// domain. Used only by repository implementations.
type RestoreOrderParams struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	TailorID         *kernel.UUID
	Status           Status
	Assignment       AssignmentState
	ItemType         string
	Measurements     Measurements
	Fabric           Fabric
	Notes            []Note
	ExpectedDelivery time.Time
	TotalAmount      float64
	CreatedAt        time.Time
	StartedAt        *time.Time
	StartedBy        *kernel.UUID
	Version          int
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time checks (a stored order may legitimately have a delivery date
// that is now in the past). Status, assignment state and structural fields
// are still validated so corrupt rows cannot become live aggregates.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.CustomerID.Validate(),
		p.Status.Validate(),
		p.Assignment.Validate(),
		p.Fabric.Validate(),
	); err != nil {
		return nil, err
	}

	if p.TailorID == nil && p.Assignment != Unassigned {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"tailorId",
			fmt.Errorf("assignment state %s requires a tailor", p.Assignment),
		)
	}

	if p.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is not a valid version", p.Version),
		)
	}

	return &Order{
		id:               p.ID,
		customerID:       p.CustomerID,
		tailorID:         p.TailorID,
		assignment:       p.Assignment,
		status:           p.Status,
		itemType:         p.ItemType,
		measurements:     p.Measurements.Clone(),
		fabric:           p.Fabric,
		notes:            p.Notes,
		expectedDelivery: p.ExpectedDelivery,
		totalAmount:      p.TotalAmount,
		createdAt:        p.CreatedAt,
		startedAt:        p.StartedAt,
		startedBy:        p.StartedBy,
		version:          p.Version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the owning customer's identifier.
func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

// Tailor returns the assigned tailor's identifier, nil while unassigned.
func (o *Order) Tailor() *kernel.UUID {
	return o.tailorID
}

// Assignment returns the current assignment state.
func (o *Order) Assignment() AssignmentState {
	return o.assignment
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ItemType returns what is being tailored.
func (o *Order) ItemType() string {
	return o.itemType
}

// Measurements returns a copy of the order's measurements.
func (o *Order) Measurements() Measurements {
	return o.measurements.Clone()
}

// Fabric returns the fabric description.
func (o *Order) Fabric() Fabric {
	return o.fabric
}

// Notes returns the append-only note trail in insertion order.
func (o *Order) Notes() []Note {
	notes := make([]Note, len(o.notes))
	copy(notes, o.notes)
	return notes
}

// ExpectedDelivery returns the promised delivery date.
func (o *Order) ExpectedDelivery() time.Time {
	return o.expectedDelivery
}

// TotalAmount returns the agreed price of the order.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns when production started, nil before startWork.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// StartedBy returns who started production, nil before startWork.
func (o *Order) StartedBy() *kernel.UUID {
	return o.startedBy
}

// Version returns the optimistic-concurrency version loaded from the store.
func (o *Order) Version() int {
	return o.version
}

// Urgency classifies the order against its expected delivery date as of now.
// Recomputed on every call, never stored.
func (o *Order) Urgency(now time.Time) Urgency {
	return ClassifyUrgency(o.expectedDelivery, now)
}

// AssignTailor hands the order to a tailor and moves the assignment track to
// PendingAcceptance.
//
// Plain assignment is allowed while the assignment state is Unassigned or
// ChangeRequested. Once a tailor is pending or has accepted, only an explicit
// reassignment (reassign=true) may replace them, and acceptance resets.
// A terminal order cannot be assigned at all.
func (o *Order) AssignTailor(tailorID kernel.UUID, reassign bool) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String(), "assign a tailor")
	}

	newState, err := o.assignment.Assign(reassign)
	if err != nil {
		return err
	}

	o.assignment = newState
	o.tailorID = &tailorID
	return nil
}

// Accept confirms the order into the assigned tailor's active queue.
//
// The caller must be the assigned tailor (ForbiddenError otherwise) and the
// assignment state must be PendingAcceptance (InvalidStateError otherwise).
func (o *Order) Accept(tailorID kernel.UUID) error {
	if err := o.requireAssignedTailor(tailorID, "accept the order"); err != nil {
		return err
	}

	newState, err := o.assignment.Accept()
	if err != nil {
		return err
	}

	o.assignment = newState
	return nil
}

// RequestChange flags a problem with the assignment back to the admin.
//
// The caller must be the assigned tailor and the assignment state must be
// PendingAcceptance. The reason is recorded on the note trail; the lifecycle
// status is unaffected.
func (o *Order) RequestChange(tailorID kernel.UUID, reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	if err := o.requireAssignedTailor(tailorID, "request a change"); err != nil {
		return err
	}

	newState, err := o.assignment.RequestChange()
	if err != nil {
		return err
	}

	o.assignment = newState
	o.notes = append(o.notes, Note{AuthorID: tailorID, Text: "change requested: " + reason, At: at})
	return nil
}

// StartWork begins production: status moves OrderPlaced -> Cutting.
//
// Requires the lifecycle status to be OrderPlaced and the assignment state to
// be Accepted; work never starts on an order the tailor has not confirmed.
// Records who started and when.
func (o *Order) StartWork(actorID kernel.UUID, at time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if o.status != OrderPlaced {
		return errs.NewInvalidStateError("order", o.status.String(), "start work")
	}
	if o.assignment != Accepted {
		return errs.NewInvalidStateError("order", o.assignment.String(), "start work")
	}

	o.status = Cutting
	o.startedAt = &at
	o.startedBy = &actorID
	return nil
}

// AdvanceTo moves the lifecycle status forward by exactly one step.
//
// The requested status must be the immediate successor of the current one;
// anything else fails with InvalidTransitionError carrying both statuses.
// Leaving OrderPlaced additionally requires an accepted assignment, the same
// gate StartWork enforces.
func (o *Order) AdvanceTo(requested Status) error {
	newStatus, err := o.status.Advance(requested)
	if err != nil {
		return err
	}

	if o.status == OrderPlaced && o.assignment != Accepted {
		return errs.NewInvalidStateError("order", o.assignment.String(), "start work")
	}

	o.status = newStatus
	return nil
}

// MarkReady is the convenience move to Ready, permitted only while the
// assignment state is Accepted. The underlying transition still has to be
// legal (current status Trial).
func (o *Order) MarkReady() error {
	if o.assignment != Accepted {
		return errs.NewInvalidStateError("order", o.assignment.String(), "mark ready")
	}

	return o.AdvanceTo(Ready)
}

// Cancel terminates the order from any non-delivered state.
//
// Cancelling an already cancelled order is a no-op, reported via the first
// return value so callers can skip notifications. Cancelling a delivered
// order fails with InvalidTransitionError.
func (o *Order) Cancel(actorID kernel.UUID, reason string, at time.Time) (bool, error) {
	if o.status == Cancelled {
		return false, nil
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return false, err
	}

	o.status = newStatus
	if reason != "" {
		o.notes = append(o.notes, Note{AuthorID: actorID, Text: "cancelled: " + reason, At: at})
	}
	return true, nil
}

// AddNote appends to the note trail. Never affects status and always
// succeeds for a valid author and non-empty text.
func (o *Order) AddNote(authorID kernel.UUID, text string, at time.Time) error {
	if err := authorID.Validate(); err != nil {
		return err
	}
	if text == "" {
		return errs.NewValueIsRequiredError("note")
	}

	o.notes = append(o.notes, Note{AuthorID: authorID, Text: text, At: at})
	return nil
}

// requireAssignedTailor checks that the acting tailor is the one assigned to
// the order.
func (o *Order) requireAssignedTailor(tailorID kernel.UUID, action string) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	if o.tailorID == nil || !o.tailorID.IsEqual(tailorID) {
		return errs.NewForbiddenError(tailorID.String(), action)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItemType(itemType string) error {
	if itemType == "" {
		return errs.NewValueIsRequiredError("itemType")
	}
	o.itemType = itemType
	return nil
}

func (o *Order) setMeasurements(measurements Measurements) error {
	if err := measurements.Validate(); err != nil {
		return err
	}
	o.measurements = measurements.Clone()
	return nil
}

func (o *Order) setFabric(fabric Fabric) error {
	if err := fabric.Validate(); err != nil {
		return err
	}
	o.fabric = fabric
	return nil
}

func (o *Order) setExpectedDelivery(expectedDelivery, createdAt time.Time) error {
	if expectedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("expectedDelivery")
	}

	// Compare at day granularity: an order promised for today is fine.
	dayStart := time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, createdAt.Location())
	if expectedDelivery.Before(dayStart) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expectedDelivery",
			fmt.Errorf("%s is in the past", expectedDelivery.Format(time.DateOnly)),
		)
	}

	o.expectedDelivery = expectedDelivery
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%v is not greater than 0", totalAmount),
		)
	}
	o.totalAmount = totalAmount
	return nil
}
