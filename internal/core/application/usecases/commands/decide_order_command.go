package commands

import (
	"errors"
	"strings"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrDecideOrderCommandIsNotConstructed = errors.New(
	"DecideOrderCommand must be created via NewDecideOrderCommand constructor",
)

// DecideOrderCommand carries a restaurant's Accept or Decline for one order.
type DecideOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber  string
	restaurantID kernel.UUID
	decision     order.Decision

	guard guard.ConstructorGuard
}

func NewDecideOrderCommand(orderNumber string, restaurantID kernel.UUID, decision order.Decision) (DecideOrderCommand, error) {
	cmd := DecideOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setRestaurantID(restaurantID),
		cmd.setDecision(decision),
	); err != nil {
		return DecideOrderCommand{}, err
	}

	return cmd, nil
}

func (c DecideOrderCommand) Validate() error {
	return c.guard.Validate(ErrDecideOrderCommandIsNotConstructed)
}

func (c DecideOrderCommand) OrderNumber() string       { return c.orderNumber }
func (c DecideOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c DecideOrderCommand) Decision() order.Decision  { return c.decision }

func (c *DecideOrderCommand) setOrderNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderNumber = number
	return nil
}

func (c *DecideOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	c.restaurantID = id
	return nil
}

func (c *DecideOrderCommand) setDecision(d order.Decision) error {
	if d != order.DecisionAccept && d != order.DecisionDecline {
		return errs.NewValueIsInvalidError("decision")
	}
	c.decision = d
	return nil
}
