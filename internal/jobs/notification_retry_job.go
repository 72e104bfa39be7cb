package jobs

import (
	"context"
	"log/slog"

	"tailorshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// NotificationRetryJob re-attempts notifications whose original dispatch
// failed. Runs every thirty seconds so a store outage delays messages
// instead of dropping them.
type NotificationRetryJob struct {
	dispatcher ports.NotificationDispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRetryJob creates a job draining the dispatcher's retry queue.
func NewNotificationRetryJob(dispatcher ports.NotificationDispatcher, logger *slog.Logger) *NotificationRetryJob {
	return &NotificationRetryJob{
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_retry_job"),
	}
}

// Start begins the retry job to run every thirty seconds.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		delivered, err := j.dispatcher.RetryFailed(ctx)
		if err != nil {
			j.logger.WarnContext(ctx, "Notification retry round left messages queued",
				"delivered", delivered, "error", err)
			return
		}
		if delivered > 0 {
			j.logger.InfoContext(ctx, "Redelivered queued notifications", "delivered", delivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every 30 seconds)")
	return nil
}

// Stop stops the retry job.
func (j *NotificationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}
