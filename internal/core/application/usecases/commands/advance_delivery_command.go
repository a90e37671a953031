package commands

import (
	"errors"
	"fmt"
	"strings"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand moves a claimed order to PickedUp, InTransit or
// Delivered on behalf of its courier.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	courierID   kernel.UUID
	next        order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryCommand(orderNumber string, courierID kernel.UUID, next order.Status) (AdvanceDeliveryCommand, error) {
	cmd := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setCourierID(courierID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

func (c AdvanceDeliveryCommand) OrderNumber() string    { return c.orderNumber }
func (c AdvanceDeliveryCommand) CourierID() kernel.UUID { return c.courierID }
func (c AdvanceDeliveryCommand) Next() order.Status     { return c.next }

func (c *AdvanceDeliveryCommand) setOrderNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderNumber = number
	return nil
}

func (c *AdvanceDeliveryCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}
	c.courierID = id
	return nil
}

func (c *AdvanceDeliveryCommand) setNext(next order.Status) error {
	switch next {
	case order.PickedUp, order.InTransit, order.Delivered:
		c.next = next
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("next",
			fmt.Errorf("%s is not PickedUp, InTransit or Delivered", next))
	}
}
