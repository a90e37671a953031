package eventhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/errs"
)

// OrderReader loads an order outside of any unit of work.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// OrderPlacedHandler tells the customer about a new order on two channels:
// SendInvoice emails the rendered invoice and SendConfirmation texts a short
// confirmation. Each is registered as its own subscriber and acknowledged on
// its own.
type OrderPlacedHandler struct {
	orders    OrderReader
	directory ports.UserDirectory
	invoices  ports.InvoiceRenderer
	notifier  ports.Notifier
	logger    *slog.Logger
}

func NewOrderPlacedHandler(
	orders OrderReader,
	directory ports.UserDirectory,
	invoices ports.InvoiceRenderer,
	notifier ports.Notifier,
	logger *slog.Logger,
) *OrderPlacedHandler {
	return &OrderPlacedHandler{
		orders:    orders,
		directory: directory,
		invoices:  invoices,
		notifier:  notifier,
		logger:    logger.With("component", "order-placed-handler"),
	}
}

// SendInvoice renders the invoice and emails it. Customers unknown to the
// directory or without an email address are skipped.
func (h *OrderPlacedHandler) SendInvoice(ctx context.Context, msg ports.OutboxMessage) error {
	o, customer, ok, err := h.load(ctx, msg)
	if err != nil || !ok {
		return err
	}
	if customer.Email == "" {
		h.logger.DebugContext(ctx, "customer has no email, invoice not sent", "orderId", o.Number())
		return nil
	}

	invoice, err := h.invoices.Render(ctx, o, customer)
	if err != nil {
		return fmt.Errorf("render invoice for %s: %w", o.Number(), err)
	}

	return h.notifier.SendEmail(ctx, ports.Email{
		To:          customer.Email,
		Subject:     fmt.Sprintf("Your FasterEats Invoice - Order %s", o.Number()),
		Body:        invoiceEmailBody(customer),
		Attachments: []ports.Attachment{invoice},
	})
}

// SendConfirmation texts the customer that the order is waiting for the
// restaurant.
func (h *OrderPlacedHandler) SendConfirmation(ctx context.Context, msg ports.OutboxMessage) error {
	o, customer, ok, err := h.load(ctx, msg)
	if err != nil || !ok {
		return err
	}
	if customer.Phone == "" {
		h.logger.DebugContext(ctx, "customer has no phone, confirmation SMS skipped", "orderId", o.Number())
		return nil
	}

	return h.notifier.SendSMS(ctx, customer.Phone, fmt.Sprintf(
		"FasterEats: order %s placed, total %s. Waiting for %s to confirm.",
		o.Number(), o.TotalAmount(), o.Restaurant().Name()))
}

func (h *OrderPlacedHandler) load(ctx context.Context, msg ports.OutboxMessage) (*order.Order, ports.Contact, bool, error) {
	var event order.PlacedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return nil, ports.Contact{}, false, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	orderID, err := kernel.UUIDFromBytes(event.OrderID[:])
	if err != nil {
		return nil, ports.Contact{}, false, err
	}
	o, err := h.orders.Get(ctx, orderID)
	if err != nil {
		return nil, ports.Contact{}, false, err
	}

	customer, ok, err := lookupContact(ctx, h.directory, o.CustomerID())
	if err != nil {
		return nil, ports.Contact{}, false, err
	}
	if !ok {
		h.logger.WarnContext(ctx, "customer is unknown to the directory, order not announced",
			"orderId", o.Number(), "customerId", o.CustomerID().String())
	}
	return o, customer, ok, nil
}

func invoiceEmailBody(customer ports.Contact) string {
	name := customer.FirstName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("<p>Hi %s,</p><p>Thank you for your order. Please find your invoice attached.</p>", name)
}

// lookupContact reports ok=false when the directory does not know the user,
// which no amount of redelivery will fix.
func lookupContact(ctx context.Context, directory ports.UserDirectory, id kernel.UUID) (ports.Contact, bool, error) {
	contact, err := directory.GetUser(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.Contact{}, false, nil
	}
	if err != nil {
		return ports.Contact{}, false, err
	}
	return contact, true, nil
}
