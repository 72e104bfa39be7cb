package jobs

import (
	"context"
	"log/slog"

	"tailorshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryReminderJob runs the daily sweep over active orders and alerts
// staff about anything due soon or overdue.
type DeliveryReminderJob struct {
	handler commands.SendDeliveryRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryReminderJob creates a job for the daily delivery reminder sweep.
func NewDeliveryReminderJob(handler commands.SendDeliveryRemindersCommandHandler, logger *slog.Logger) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_reminder_job"),
	}
}

// Start begins the reminder job, running every morning at eight.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 8 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSendDeliveryRemindersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started (running daily at 08:00)")
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}
