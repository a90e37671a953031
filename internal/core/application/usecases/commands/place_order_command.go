package commands

import (
	"errors"
	"strings"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer checking out a cart at one
// restaurant.
//
// Example:
//
//	restaurant, _ := order.NewRestaurant(restaurantID, "Pizza Place", "1 Main St")
//	line, _ := order.NewCartLine("margherita", "Margherita", price, 2)
//	cmd, err := NewPlaceOrderCommand(customerID, restaurant, []order.CartLine{line}, order.Card, "5 Oak Ave")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	resp, err := handler.Handle(ctx, cmd)
//	fmt.Printf("order %s placed", resp.Number)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	restaurant      order.Restaurant
	cartLines       []order.CartLine
	paymentMethod   order.PaymentMethod
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the checkout input. All problems are
// reported together.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	restaurant order.Restaurant,
	cartLines []order.CartLine,
	paymentMethod order.PaymentMethod,
	deliveryAddress string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurant(restaurant),
		cmd.setCartLines(cartLines),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID            { return c.customerID }
func (c PlaceOrderCommand) Restaurant() order.Restaurant       { return c.restaurant }
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c PlaceOrderCommand) DeliveryAddress() string            { return c.deliveryAddress }

func (c PlaceOrderCommand) CartLines() []order.CartLine {
	lines := make([]order.CartLine, len(c.cartLines))
	copy(lines, c.cartLines)
	return lines
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setRestaurant(r order.Restaurant) error {
	if err := r.ID().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	c.restaurant = r
	return nil
}

func (c *PlaceOrderCommand) setCartLines(lines []order.CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}
	c.cartLines = make([]order.CartLine, len(lines))
	copy(c.cartLines, lines)
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(p order.PaymentMethod) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.paymentMethod = p
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}
