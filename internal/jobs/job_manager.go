package jobs

import (
	"fmt"
	"log/slog"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationRetryJob *NotificationRetryJob
	deliveryReminderJob  *DeliveryReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dispatcher ports.NotificationDispatcher,
	reminderHandler commands.SendDeliveryRemindersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRetryJob: NewNotificationRetryJob(dispatcher, logger),
		deliveryReminderJob:  NewDeliveryReminderJob(reminderHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification retry job: %w", err)
	}

	if err := jm.deliveryReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.notificationRetryJob.Stop()
		return fmt.Errorf("failed to start delivery reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRetryJob.Stop()
	jm.deliveryReminderJob.Stop()
}
