package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastereats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CouponPurgeJob deletes coupons that expired longer than the retention
// window ago.
type CouponPurgeJob struct {
	handler   commands.PurgeExpiredCouponsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewCouponPurgeJob(
	handler commands.PurgeExpiredCouponsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *CouponPurgeJob {
	return &CouponPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "coupon_purge_job"),
	}
}

// Start schedules the purge at the top of every hour.
func (j *CouponPurgeJob) Start() error {
	cmd, err := commands.NewPurgeExpiredCouponsCommand(j.retention)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		deleted, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Coupon purge job failed", "error", handleErr)
			return
		}
		if deleted > 0 {
			j.logger.InfoContext(ctx, "Expired coupons purged", "deleted", deleted)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Coupon purge job started (running hourly)")
	return nil
}

func (j *CouponPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Coupon purge job stopped")
}
