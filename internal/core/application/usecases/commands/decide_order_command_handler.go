package commands

import (
	"context"

	"fastereats/internal/core/domain/model/order"
)

// DecideOrderCommandHandler applies a restaurant decision. Accepting an order
// is what publishes it as an open delivery job: the open-job pool is the set
// of Accepted orders, so the write that accepts also publishes.
type DecideOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDecideOrderCommandHandler(uowFactory OrderUoWFactory) DecideOrderCommandHandler {
	return DecideOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DecideOrderCommandHandler) Handle(ctx context.Context, cmd DecideOrderCommand) error {
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

	if err = o.Decide(cmd.RestaurantID(), cmd.Decision()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return explainConflict(ctx, orderRepo, cmd.OrderNumber(), err, func(fresh *order.Order) error {
			return fresh.Decide(cmd.RestaurantID(), cmd.Decision())
		})
	}

	return uow.Commit(ctx)
}
