package kernel

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
)

// Role identifies the kind of actor invoking an operation. Roles arrive as a
// claim on the bearer token issued by the external identity provider and are
// enforced per operation by the application layer.
type Role string

const (
	// RoleAdmin manages the back office: assignment, cancellation, broadcasts.
	RoleAdmin Role = "Admin"

	// RoleStaff runs the order board: creation, status advancement, billing.
	RoleStaff Role = "Staff"

	// RoleTailor works the queue: acceptance, change requests, production steps.
	RoleTailor Role = "Tailor"

	// RoleCustomer owns orders and reads their progress.
	RoleCustomer Role = "Customer"
)

// getValidRoles returns the set of roles the system recognizes.
func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleAdmin:    {},
		RoleStaff:    {},
		RoleTailor:   {},
		RoleCustomer: {},
	}
}

// RoleFromString parses a role claim value. Returns an error for any value
// outside the recognized role set.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the recognized values.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the role claim value.
func (r Role) String() string {
	return string(r)
}

// IsStaffOrAdmin reports whether the role may perform back-office actions
// (assignment, cancellation, payment recording).
func (r Role) IsStaffOrAdmin() bool {
	return r == RoleStaff || r == RoleAdmin
}
