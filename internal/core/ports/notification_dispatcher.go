package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/notification"
)

// NotificationDispatcher delivers notifications raised by lifecycle events.
//
// Dispatch happens after the triggering transaction commits: a dispatcher
// failure never rolls the transition back. Implementations report failures
// as DependencyError and queue the message for retry so it is never dropped.
type NotificationDispatcher interface {
	// Dispatch delivers the notification to its targets' inboxes.
	Dispatch(ctx context.Context, entity *notification.Notification) error

	// RetryFailed re-attempts every queued notification whose original
	// dispatch failed. Returns how many were delivered this round.
	RetryFailed(ctx context.Context) (int, error)
}
