package commands

import (
	"context"
	"time"
)

type PurgeExpiredCouponsCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewPurgeExpiredCouponsCommandHandler(uowFactory CouponUoWFactory) PurgeExpiredCouponsCommandHandler {
	return PurgeExpiredCouponsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of deleted coupons.
func (h *PurgeExpiredCouponsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredCouponsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	deleted, err := uow.CouponRepository().DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
