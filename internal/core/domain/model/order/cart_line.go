package order

import (
	"errors"
	"fmt"
	"strings"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
)

// CartLine is a snapshot of a menu item taken when the order is placed. Later
// menu edits never reach existing orders.
type CartLine struct {
	itemID    string
	name      string
	unitPrice kernel.Money
	quantity  int
}

// NewCartLine validates a single line: quantity must be positive. Money
// already guarantees a non-negative unit price.
func NewCartLine(itemID, name string, unitPrice kernel.Money, quantity int) (CartLine, error) {
	var errList []error
	if strings.TrimSpace(itemID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("itemId"))
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return CartLine{}, err
	}

	return CartLine{itemID: itemID, name: name, unitPrice: unitPrice, quantity: quantity}, nil
}

func (l CartLine) ItemID() string          { return l.itemID }
func (l CartLine) Name() string            { return l.name }
func (l CartLine) UnitPrice() kernel.Money { return l.unitPrice }
func (l CartLine) Quantity() int           { return l.quantity }

// Total is unitPrice times quantity.
func (l CartLine) Total() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
