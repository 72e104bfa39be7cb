package commands

import (
	"context"

	"tailorshop/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler handles acknowledging inbox entries.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for notification
// acknowledgement.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement. Any authenticated actor may mark a
// notification read, but only when the notification addresses them.
// Acknowledging an already-read notification is a no-op.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	entity, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	if !entity.IsFor(actor.ID, actor.Role) {
		return errs.NewForbiddenError(actor.ID.String(), "acknowledge this notification")
	}

	if entity.IsRead() {
		return uow.Commit(ctx)
	}

	entity.MarkRead()
	if err = repo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
