package notification

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification instance
	// was not created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")
)

// Type conveys how a notification should be rendered.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Validate checks that the type is one of the recognized values.
func (t Type) Validate() error {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"type", fmt.Errorf("%q is not a valid notification type", string(t)))
}

// String returns the wire value of the type.
func (t Type) String() string {
	return string(t)
}

// Priority orders notifications in the inbox.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Validate checks that the priority is one of the recognized values.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"priority", fmt.Errorf("%q is not a valid notification priority", string(p)))
}

// String returns the wire value of the priority.
func (p Priority) String() string {
	return string(p)
}

// Notification is a message addressed to roles, to specific users, or both.
// Read state is per notification, not per recipient: the inbox model is a
// shared board, matching how the shop floor uses it.
type Notification struct {
	id       kernel.UUID
	message  string
	ntype    Type
	priority Priority

	targetRoles []kernel.Role
	targetUsers []kernel.UUID

	isRead    bool
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread Notification. At least one target, role
// or user, is required so no message can be addressed to nobody.
func NewNotification(
	id kernel.UUID,
	message string,
	ntype Type,
	priority Priority,
	targetRoles []kernel.Role,
	targetUsers []kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setMessage(message),
		n.setType(ntype),
		n.setPriority(priority),
		n.setTargets(targetRoles, targetUsers),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotificationParams carries the persisted state of a notification
// back into the domain. Used only by repository implementations.
type RestoreNotificationParams struct {
	ID          kernel.UUID
	Message     string
	Type        Type
	Priority    Priority
	TargetRoles []kernel.Role
	TargetUsers []kernel.UUID
	IsRead      bool
	CreatedAt   time.Time
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(p RestoreNotificationParams) (*Notification, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.Type.Validate(),
		p.Priority.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            p.ID,
		message:       p.Message,
		ntype:         p.Type,
		priority:      p.Priority,
		targetRoles:   p.TargetRoles,
		targetUsers:   p.TargetUsers,
		isRead:        p.IsRead,
		createdAt:     p.CreatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}

	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Message returns the rendered text.
func (n *Notification) Message() string {
	return n.message
}

// Type returns the rendering type.
func (n *Notification) Type() Type {
	return n.ntype
}

// Priority returns the inbox priority.
func (n *Notification) Priority() Priority {
	return n.priority
}

// TargetRoles returns the addressed roles.
func (n *Notification) TargetRoles() []kernel.Role {
	return slices.Clone(n.targetRoles)
}

// TargetUsers returns the addressed users.
func (n *Notification) TargetUsers() []kernel.UUID {
	return slices.Clone(n.targetUsers)
}

// IsRead reports whether the notification has been acknowledged.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// CreatedAt returns when the notification was raised.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// IsFor reports whether the notification addresses the given actor, either
// through one of its roles targets or directly by user id.
func (n *Notification) IsFor(userID kernel.UUID, role kernel.Role) bool {
	if slices.Contains(n.targetRoles, role) {
		return true
	}
	return slices.ContainsFunc(n.targetUsers, func(target kernel.UUID) bool {
		return target.IsEqual(userID)
	})
}

// MarkRead acknowledges the notification. Idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setType(ntype Type) error {
	if err := ntype.Validate(); err != nil {
		return err
	}
	n.ntype = ntype
	return nil
}

func (n *Notification) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	n.priority = priority
	return nil
}

func (n *Notification) setTargets(targetRoles []kernel.Role, targetUsers []kernel.UUID) error {
	if len(targetRoles) == 0 && len(targetUsers) == 0 {
		return errs.NewValueIsRequiredError("targets")
	}

	for _, role := range targetRoles {
		if err := role.Validate(); err != nil {
			return err
		}
	}
	for _, userID := range targetUsers {
		if err := userID.Validate(); err != nil {
			return err
		}
	}

	n.targetRoles = slices.Clone(targetRoles)
	n.targetUsers = slices.Clone(targetUsers)
	return nil
}
