package eventhandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/errs"
)

// statusMessages holds the SMS text per target status. Transitions missing
// here are not announced.
var statusMessages = map[string]string{
	order.Accepted.String():          "FasterEats: the restaurant accepted order %s and is preparing it.",
	order.Declined.String():          "FasterEats: sorry, the restaurant declined order %s.",
	order.AssignedToCourier.String(): "FasterEats: a courier has been assigned to order %s.",
	order.PickedUp.String():          "FasterEats: order %s has been picked up.",
	order.InTransit.String():         "FasterEats: order %s is on its way.",
	order.Delivered.String():         "FasterEats: order %s has been delivered. Enjoy!",
}

// OrderStatusChangedHandler texts the customer about progress of their order.
type OrderStatusChangedHandler struct {
	directory ports.UserDirectory
	notifier  ports.Notifier
	logger    *slog.Logger
}

func NewOrderStatusChangedHandler(
	directory ports.UserDirectory,
	notifier ports.Notifier,
	logger *slog.Logger,
) *OrderStatusChangedHandler {
	return &OrderStatusChangedHandler{
		directory: directory,
		notifier:  notifier,
		logger:    logger.With("component", "order-status-handler"),
	}
}

func (h *OrderStatusChangedHandler) Handle(ctx context.Context, msg ports.OutboxMessage) error {
	var event order.StatusChangedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	text, ok := statusMessages[event.To]
	if !ok {
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
	if !ok || customer.Phone == "" {
		h.logger.DebugContext(ctx, "customer has no phone, status SMS skipped",
			"orderId", event.Number, "status", event.To)
		return nil
	}

	return h.notifier.SendSMS(ctx, customer.Phone, fmt.Sprintf(text, event.Number))
}
