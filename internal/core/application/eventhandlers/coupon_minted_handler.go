package eventhandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/errs"
)

// CouponMintedHandler emails a newly earned coupon to the customer. Coupons
// minted without an earning customer are not announced.
type CouponMintedHandler struct {
	directory ports.UserDirectory
	notifier  ports.Notifier
	logger    *slog.Logger
}

func NewCouponMintedHandler(directory ports.UserDirectory, notifier ports.Notifier, logger *slog.Logger) *CouponMintedHandler {
	return &CouponMintedHandler{
		directory: directory,
		notifier:  notifier,
		logger:    logger.With("component", "coupon-minted-handler"),
	}
}

func (h *CouponMintedHandler) Handle(ctx context.Context, msg ports.OutboxMessage) error {
	var event coupon.MintedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	if event.CustomerID == nil {
		return nil
	}

	customerID, err := kernel.UUIDFromBytes(event.CustomerID[:])
	if err != nil {
		return err
	}
	customer, ok, err := lookupContact(ctx, h.directory, customerID)
	if err != nil {
		return err
	}
	if !ok || customer.Email == "" {
		h.logger.DebugContext(ctx, "customer has no email, coupon not announced", "code", event.Code)
		return nil
	}

	return h.notifier.SendEmail(ctx, ports.Email{
		To:      customer.Email,
		Subject: "You earned a FasterEats coupon",
		Body: fmt.Sprintf(
			"<p>Thanks for your order! Use code <b>%s</b> to get %s off your next order. "+
				"It is valid until %s.</p>",
			event.Code, event.DiscountAmount, event.ExpiresAt.Format("2 Jan 2006 15:04 MST")),
	})
}
