// Package eventhandlers delivers side effects of committed domain events:
// invoice email and confirmation SMS on placement, SMS on status changes and
// the coupon email.
//
// Handlers run from the outbox relay, after the transaction that raised the
// event has committed, so nothing they do can roll an order back. Delivery is
// at least once per subscriber: every subscriber of an event is acknowledged
// on its own, and a redelivered message only reaches the subscribers that
// have not succeeded yet.
package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"fastereats/internal/core/ports"

	"github.com/google/uuid"
)

// Handler reacts to a single event type.
type Handler interface {
	Handle(ctx context.Context, msg ports.OutboxMessage) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, msg ports.OutboxMessage) error

func (f HandlerFunc) Handle(ctx context.Context, msg ports.OutboxMessage) error {
	return f(ctx, msg)
}

// DeliveryLog remembers which subscribers already handled a message.
type DeliveryLog interface {
	DeliveredHandlers(ctx context.Context, id uuid.UUID) ([]string, error)
	RecordDelivery(ctx context.Context, id uuid.UUID, handler string) error
}

type subscriber struct {
	name    string
	handler Handler
}

// Dispatcher routes outbox messages to the subscribers of their event type.
type Dispatcher struct {
	subscribers map[string][]subscriber
	deliveries  DeliveryLog
	logger      *slog.Logger
}

func NewDispatcher(deliveries DeliveryLog, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		subscribers: make(map[string][]subscriber),
		deliveries:  deliveries,
		logger:      logger.With("component", "event-dispatcher"),
	}
}

// Register subscribes a handler to an event type under name. The name is
// what the delivery log stores, so it must stay stable across releases and be
// unique per event type. Registering a name twice replaces the handler.
//
// Usage:
//
//	placed := eventhandlers.NewOrderPlacedHandler(orders, users, renderer, notifier, logger)
//	eventhandlers.NewDispatcher(deliveries, logger).
//	    Register(order.PlacedEventName, "invoice-email", eventhandlers.HandlerFunc(placed.SendInvoice)).
//	    Register(order.PlacedEventName, "placed-sms", eventhandlers.HandlerFunc(placed.SendConfirmation))
func (d *Dispatcher) Register(eventType, name string, h Handler) *Dispatcher {
	subs := d.subscribers[eventType]
	for i := range subs {
		if subs[i].name == name {
			subs[i].handler = h
			return d
		}
	}
	d.subscribers[eventType] = append(subs, subscriber{name: name, handler: h})
	return d
}

// Dispatch runs every subscriber of msg.EventType that has not handled msg
// yet and records each success right away. Messages nobody listens to are
// acknowledged so they do not clog the outbox. The returned error joins the
// failures of all subscribers that still owe a delivery.
func (d *Dispatcher) Dispatch(ctx context.Context, msg ports.OutboxMessage) error {
	subs, ok := d.subscribers[msg.EventType]
	if !ok {
		d.logger.WarnContext(ctx, "no handler for event, skipping",
			"eventType", msg.EventType, "eventId", msg.ID)
		return nil
	}

	done, err := d.deliveries.DeliveredHandlers(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("read deliveries of %s: %w", msg.ID, err)
	}

	var errList []error
	for _, sub := range subs {
		if slices.Contains(done, sub.name) {
			continue
		}
		if err = sub.handler.Handle(ctx, msg); err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", sub.name, err))
			continue
		}
		if err = d.deliveries.RecordDelivery(ctx, msg.ID, sub.name); err != nil {
			errList = append(errList, fmt.Errorf("record %s delivery: %w", sub.name, err))
		}
	}
	return errors.Join(errList...)
}
