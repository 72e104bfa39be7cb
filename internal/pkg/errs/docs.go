// Package errs provides standardized error types for the tailorshop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order-lifecycle core:
//   - ValueIsRequiredError / ValueIsInvalidError: user-correctable input problems
//   - ObjectNotFoundError: unknown order, tailor, bill or notification
//   - ForbiddenError: actor lacks the role or ownership for the action
//   - InvalidStateError: action not legal from the current assignment state
//   - InvalidTransitionError: lifecycle status move outside the allowed edges
//   - ConflictError: optimistic-concurrency loser, caller should refetch and retry
//   - DependencyError: collaborator failure that must not roll back the transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is works
//
// The HTTP adapter maps these types onto status codes (400/403/404/409); the
// core never inspects error strings, only types and sentinels.
package errs
