// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the tailoring shop. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - BillGenerator: raises the one-per-order bill at the billable point
//     of the lifecycle
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
