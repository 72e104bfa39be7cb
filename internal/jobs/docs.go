// Package jobs provides scheduled background tasks for the tailor shop
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around notifications and delivery dates.
//
// # Available Jobs
//
// 1. NotificationRetryJob - Runs every thirty seconds to redeliver notifications whose dispatch failed
// 2. DeliveryReminderJob - Runs daily at 08:00 to alert staff about orders due soon or overdue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(dispatcher, reminderHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The retry job logs a warning when a round leaves messages queued; the queue drains on a later tick
// - The reminder job logs sweep failures; the next morning's run covers anything missed
// - Failed job starts will stop any already running jobs
package jobs
