package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap target for each error type.
// Callers classify errors with errors.Is against these values.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrObjectNotFound     = errors.New("object not found")
	ErrForbidden          = errors.New("action is forbidden")
	ErrInvalidState       = errors.New("state does not allow this action")
	ErrInvalidTransition  = errors.New("status transition is not allowed")
	ErrConcurrentConflict = errors.New("concurrent update conflict")
	ErrDependencyFailed   = errors.New("dependency call failed")
)

// sanitize collapses newlines so multi-line causes do not break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ForbiddenError indicates that the acting user lacks the role or ownership
// required for the attempted action.
type ForbiddenError struct {
	ActorID string
	Action  string
	Cause   error
}

// NewForbiddenError creates a ForbiddenError for the given actor and action.
func NewForbiddenError(actorID, action string) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Action: action}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying cause.
func NewForbiddenErrorWithCause(actorID, action string, cause error) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: actor %s may not %s (cause: %s)",
			ErrForbidden, e.ActorID, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: actor %s may not %s", ErrForbidden, e.ActorID, e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError indicates that an action is not legal from the entity's
// current state. Current and Attempted are included so clients can refresh
// and present the real state.
type InvalidStateError struct {
	Entity    string
	Current   string
	Attempted string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError describing the illegal action.
func NewInvalidStateError(entity, current, attempted string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Attempted: attempted}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(entity, current, attempted string, cause error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Attempted: attempted, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s in state %s cannot %s (cause: %s)",
			ErrInvalidState, e.Entity, e.Current, e.Attempted, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s in state %s cannot %s",
		ErrInvalidState, e.Entity, e.Current, e.Attempted))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidTransitionError indicates that a lifecycle status move is not on the
// allowed edge list. Current and Requested statuses are machine-readable so
// the client can refetch and retry with fresh state.
type InvalidTransitionError struct {
	Current   string
	Requested string
	Cause     error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected move.
func NewInvalidTransitionError(current, requested string) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Requested: requested}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(current, requested string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Requested: requested, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: current=%s, requested=%s (cause: %s)",
			ErrInvalidTransition, e.Current, e.Requested, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: current=%s, requested=%s",
		ErrInvalidTransition, e.Current, e.Requested))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError indicates that an optimistic-concurrency update lost the race.
// The caller is expected to refetch the object and retry.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError for the given parameter and identifier.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrConcurrentConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrConcurrentConflict, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConcurrentConflict
}

// DependencyError indicates that a collaborator (notification dispatcher,
// billing generator) failed. The business operation that triggered the call
// is not rolled back; the failed side effect is queued for retry.
type DependencyError struct {
	Dependency string
	Cause      error
}

// NewDependencyError creates a DependencyError for the named collaborator.
func NewDependencyError(dependency string, cause error) *DependencyError {
	return &DependencyError{Dependency: dependency, Cause: cause}
}

func (e *DependencyError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDependencyFailed, e.Dependency, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDependencyFailed, e.Dependency))
}

func (e *DependencyError) Unwrap() error {
	return ErrDependencyFailed
}
