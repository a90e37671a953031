package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastereats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxRelayJob drains the outbox on a schedule, handing committed domain
// events to the notification side effects.
type OutboxRelayJob struct {
	handler     commands.ProcessOutboxCommandHandler
	batchSize   int
	maxAttempts int
	lease       time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewOutboxRelayJob creates the relay. batchSize, maxAttempts and lease are
// passed to every ProcessOutboxCommand.
func NewOutboxRelayJob(
	handler commands.ProcessOutboxCommandHandler,
	batchSize, maxAttempts int,
	lease time.Duration,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:     handler,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		lease:       lease,
		cron:        cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:      logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the relay every second. A pass that is still running when
// the next tick fires makes that tick a no-op.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewProcessOutboxCommand(j.batchSize, j.maxAttempts, j.lease)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("* * * * * *", func() {
		j.RunOnce(context.Background(), cmd)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// RunOnce relays one batch.
func (j *OutboxRelayJob) RunOnce(ctx context.Context, cmd commands.ProcessOutboxCommand) {
	resp, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if resp.Processed > 0 || resp.Failed > 0 {
		j.logger.DebugContext(ctx, "Outbox batch relayed", "processed", resp.Processed, "failed", resp.Failed)
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
