package commands

import (
	"context"
)

// DeleteCouponCommandHandler removes a coupon regardless of its state.
// Orders that already redeemed it keep their discount and coupon code.
type DeleteCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewDeleteCouponCommandHandler(uowFactory CouponUoWFactory) DeleteCouponCommandHandler {
	return DeleteCouponCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteCouponCommandHandler) Handle(ctx context.Context, cmd DeleteCouponCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CouponRepository().Delete(ctx, cmd.Code()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
