package commands

import (
	"context"
	"fmt"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
)

// SendDeliveryRemindersCommandHandler sweeps the active orders and raises a
// staff notification for each one whose delivery date is close or past.
// Urgency is computed against the sweep time, never stored.
type SendDeliveryRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewSendDeliveryRemindersCommandHandler creates a handler for the reminder sweep.
func NewSendDeliveryRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) SendDeliveryRemindersCommandHandler {
	return SendDeliveryRemindersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the reminder sweep. The read is transactional; the
// notifications go out after commit like every other side effect.
func (h *SendDeliveryRemindersCommandHandler) Handle(ctx context.Context, cmd SendDeliveryRemindersCommand) error {
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

	active, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, aggregate := range active {
		switch aggregate.Urgency(now) {
		case order.UrgencyUrgent:
			notify(ctx, h.dispatcher,
				fmt.Sprintf("Order %s (%s) is due on %s",
					aggregate.ID(), aggregate.ItemType(),
					aggregate.ExpectedDelivery().Format("2006-01-02")),
				notification.TypeWarning,
				notification.PriorityHigh,
				[]kernel.Role{kernel.RoleStaff, kernel.RoleAdmin},
				nil,
			)
		case order.UrgencyVeryUrgent:
			notify(ctx, h.dispatcher,
				fmt.Sprintf("Order %s (%s) needs immediate attention, due %s",
					aggregate.ID(), aggregate.ItemType(),
					aggregate.ExpectedDelivery().Format("2006-01-02")),
				notification.TypeError,
				notification.PriorityUrgent,
				[]kernel.Role{kernel.RoleStaff, kernel.RoleAdmin},
				nil,
			)
		case order.UrgencyNormal:
		}
	}

	return nil
}
