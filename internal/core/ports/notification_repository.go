package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	Add(ctx context.Context, entity *notification.Notification) error

	// Update persists changes to an existing notification (read state).
	Update(ctx context.Context, entity *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	// Returns ObjectNotFoundError when no such notification exists.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetUnreadFor retrieves unread notifications addressed to the actor,
	// by role target or by direct user target, highest priority first.
	GetUnreadFor(ctx context.Context, userID kernel.UUID, role kernel.Role) ([]*notification.Notification, error)
}
