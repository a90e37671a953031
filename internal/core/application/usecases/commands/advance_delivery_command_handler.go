package commands

import (
	"context"

	"fastereats/internal/core/domain/model/order"
)

// AdvanceDeliveryCommandHandler checks ownership before the transition, so a
// courier poking at someone else's order learns nothing about its status.
type AdvanceDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceDeliveryCommandHandler(uowFactory OrderUoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = o.Advance(cmd.CourierID(), cmd.Next()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return explainConflict(ctx, orderRepo, cmd.OrderNumber(), err, func(fresh *order.Order) error {
			return fresh.Advance(cmd.CourierID(), cmd.Next())
		})
	}

	return uow.Commit(ctx)
}
