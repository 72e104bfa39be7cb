// Package order provides domain entities and business logic for tailoring
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, descriptive payload and lifecycle
//   - Status: a state machine over the fixed forward chain
//     OrderPlaced -> Cutting -> Stitching -> Trial -> Ready -> Delivered,
//     with Cancelled reachable from every non-terminal state
//   - AssignmentState: the orthogonal tailor hand-off track
//     (Unassigned / PendingAcceptance / Accepted / ChangeRequested)
//   - Fabric, Measurements: validated value objects for the descriptive payload
//   - Urgency: the derived, never-persisted delivery-date classification
//
// Key business rules:
//   - status moves one step at a time; no skipping, no backward moves
//   - production starts only after the assigned tailor accepts
//   - cancellation is idempotent and impossible after delivery
//   - notes are append-only and never affect status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
