package commands

import (
	"context"
	"log/slog"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/ports"
)

// notify builds a notification and hands it to the dispatcher after the
// triggering transaction has committed. A dispatch failure is logged and
// swallowed: the dispatcher queues the message for retry, and a completed
// transition is never reported as failed because a side effect did not land.
func notify(
	ctx context.Context,
	dispatcher ports.NotificationDispatcher,
	message string,
	ntype notification.Type,
	priority notification.Priority,
	targetRoles []kernel.Role,
	targetUsers []kernel.UUID,
) {
	entity, err := notification.NewNotification(
		kernel.NewUUID(), message, ntype, priority, targetRoles, targetUsers, time.Now().UTC(),
	)
	if err != nil {
		slog.Error("building notification failed", "error", err)
		return
	}

	if err := dispatcher.Dispatch(ctx, entity); err != nil {
		slog.Warn("notification dispatch failed, queued for retry",
			"notification_id", entity.ID().String(), "error", err)
	}
}
