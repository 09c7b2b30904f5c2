// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to move outbox messages to Kafka and to keep the outbox table small.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Publishes pending outbox messages, every second by default
// 2. OutboxCleanupJob - Deletes published messages older than the retention period
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOutboxRelayJob(publishHandler, jobs.EverySecond, 100, logger),
//		jobs.NewOutboxCleanupJob(cleanupHandler, "0 0 * * * *", 24*time.Hour, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six field cron format with seconds. A tick is skipped while
// the previous one of the same job is still running.
//
// # Error Handling
//
// Failures are logged and retried on the next tick. A relay failure leaves the
// unpublished messages pending, so nothing is lost.
package jobs
