package commands

import (
	"context"
	"log/slog"
	"time"

	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/domain/services"
)

// PlaceOrderCommandResponse identifies the placed order. Coupon is set when
// the order earned one and minting succeeded.
type PlaceOrderCommandResponse struct {
	OrderID     kernel.UUID
	Number      string
	TotalAmount kernel.Money
	Coupon      *MintCouponCommandResponse
}

// PlaceOrderCommandHandler stores a new order in Placed status. Invoice and
// customer notification follow from the OrderPlaced event the unit of work
// writes to the outbox, so they never hold up or roll back placement.
//
// When the order total exceeds the coupon threshold a coupon is minted in a
// separate transaction after the order is committed. A failed mint is logged
// and the placement still succeeds.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	minter     MintCouponCommandHandler
	pricer     services.OrderPricer
	logger     *slog.Logger
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	minter MintCouponCommandHandler,
	pricer services.OrderPricer,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		minter:     minter,
		pricer:     pricer,
		logger:     logger.With("component", "place-order"),
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderCommandResponse{}, err
	}

	o, err := h.place(ctx, cmd)
	if err != nil {
		return PlaceOrderCommandResponse{}, err
	}

	resp := PlaceOrderCommandResponse{
		OrderID:     o.ID(),
		Number:      o.Number(),
		TotalAmount: o.TotalAmount(),
	}

	if h.pricer.EarnsCoupon(o) {
		resp.Coupon = h.mintEarnedCoupon(ctx, o)
	}

	return resp, nil
}

func (h *PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextNumber(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		number,
		cmd.CustomerID(),
		cmd.Restaurant(),
		cmd.CartLines(),
		h.pricer.DeliveryFee(),
		cmd.PaymentMethod(),
		cmd.DeliveryAddress(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *PlaceOrderCommandHandler) mintEarnedCoupon(ctx context.Context, o *order.Order) *MintCouponCommandResponse {
	amount, ttl := h.pricer.CouponTerms()
	cmd, err := NewMintCouponCommand(amount, ttl, &coupon.Source{
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build coupon for order",
			"orderId", o.Number(), "error", err)
		return nil
	}

	resp, err := h.minter.Handle(ctx, cmd)
	if err != nil {
		h.logger.WarnContext(ctx, "order placed without coupon",
			"orderId", o.Number(), "error", err)
		return nil
	}

	h.logger.InfoContext(ctx, "coupon minted for order",
		"orderId", o.Number(), "code", resp.Code)
	return &resp
}
