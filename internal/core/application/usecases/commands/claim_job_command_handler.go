package commands

import (
	"context"
	"time"

	"fastereats/internal/core/domain/model/order"
)

// ClaimJobCommandHandler assigns an open job to a registered driver.
//
// The courier must exist in the driver registry and hold an unexpired licence;
// name and phone recorded on the order come from the registry, never from the
// caller. An unknown driver is NotFound and an expired licence is
// ValueIsInvalid.
//
// The write is conditional on the version and status the order was read with.
// When several couriers claim the same job concurrently, exactly one write
// matches; every other claimant re-reads the order and receives
// AlreadyClaimed because a courier is now recorded. A claim on an order that
// is not open (Placed, Declined) is an InvalidTransition, and an unknown
// order is NotFound.
type ClaimJobCommandHandler struct {
	uowFactory ClaimUoWFactory
}

func NewClaimJobCommandHandler(uowFactory ClaimUoWFactory) ClaimJobCommandHandler {
	return ClaimJobCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ClaimJobCommandHandler) Handle(ctx context.Context, cmd ClaimJobCommand) error {
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

	d, err := uow.DriverRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	courier, err := d.Courier(time.Now().UTC())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = o.AssignCourier(courier); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return explainConflict(ctx, orderRepo, cmd.OrderNumber(), err, func(fresh *order.Order) error {
			return fresh.AssignCourier(courier)
		})
	}

	return uow.Commit(ctx)
}
