package commands

import (
	"context"
	"errors"
	"time"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/domain/services"
	"fastereats/internal/pkg/errs"
)

// ApplyCouponCommandResponse carries the discounted total.
type ApplyCouponCommandResponse struct {
	Discount    kernel.Money
	TotalAmount kernel.Money
}

// ApplyCouponCommandHandler redeems a coupon against a Placed order. The
// coupon's conditional update and the order's conditional update share one
// transaction: either the coupon is spent and the order discounted, or
// neither happens.
type ApplyCouponCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

func NewApplyCouponCommandHandler(uowFactory UoWFactory, pricer services.OrderPricer) ApplyCouponCommandHandler {
	return ApplyCouponCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

func (h *ApplyCouponCommandHandler) Handle(ctx context.Context, cmd ApplyCouponCommand) (ApplyCouponCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ApplyCouponCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApplyCouponCommandResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	couponRepo := uow.CouponRepository()

	o, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return ApplyCouponCommandResponse{}, err
	}

	c, err := couponRepo.Get(ctx, cmd.CouponCode())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ApplyCouponCommandResponse{}, errs.NewCouponIsInvalidErrorWithCause(cmd.CouponCode(), err)
	}
	if err != nil {
		return ApplyCouponCommandResponse{}, err
	}

	if err = h.pricer.ApplyCoupon(o, c, time.Now().UTC()); err != nil {
		return ApplyCouponCommandResponse{}, err
	}

	if err = couponRepo.Redeem(ctx, c); err != nil {
		return ApplyCouponCommandResponse{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ApplyCouponCommandResponse{}, explainConflict(ctx, orderRepo, cmd.OrderNumber(), err,
			func(fresh *order.Order) error {
				return fresh.CanApplyCoupon(cmd.CouponCode())
			})
	}

	if err = uow.Commit(ctx); err != nil {
		return ApplyCouponCommandResponse{}, err
	}

	return ApplyCouponCommandResponse{
		Discount:    o.Discount(),
		TotalAmount: o.TotalAmount(),
	}, nil
}
