// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second and delivers pending outbox messages
// (invoice email, status SMS, coupon email)
// 2. CouponPurgeJob - Runs hourly and deletes coupons that expired longer than
// the retention window ago
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processOutboxHandler, purgeCouponsHandler, jobs.Settings{
//		OutboxBatchSize:   50,
//		OutboxMaxAttempts: 10,
//		CouponRetention:   24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A relay pass that fails is logged and retried on the next tick
// - Delivery failures of single messages are recorded on the message itself
// - Failed job starts will stop any already running jobs
package jobs
