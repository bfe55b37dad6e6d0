// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the checkout pipeline.
//
// # Available Jobs
//
// 1. NotificationRetryJob - Drains the notification outbox, re-sending order
// emails whose original dispatch failed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outbox, mailer, metrics, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The retry job uses the cron expression "*/30 * * * * *", running every 30
// seconds. Each run processes a bounded batch so a large backlog cannot stall
// a tick indefinitely.
//
// # Error Handling
//
// A failed re-send increments the record's attempt count; records past the
// attempt limit are left in place for audit and no longer retried.
package jobs
