package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fastereats/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	couponPurgeJob *CouponPurgeJob
}

// Settings holds the job parameters taken from configuration.
type Settings struct {
	OutboxBatchSize   int
	OutboxMaxAttempts int
	OutboxLease       time.Duration
	CouponRetention   time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	processOutboxHandler commands.ProcessOutboxCommandHandler,
	purgeCouponsHandler commands.PurgeExpiredCouponsCommandHandler,
	settings Settings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(
			processOutboxHandler,
			settings.OutboxBatchSize,
			settings.OutboxMaxAttempts,
			settings.OutboxLease,
			logger,
		),
		couponPurgeJob: NewCouponPurgeJob(purgeCouponsHandler, settings.CouponRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.couponPurgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start coupon purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.couponPurgeJob.Stop()
	jm.outboxRelayJob.Stop()
}
