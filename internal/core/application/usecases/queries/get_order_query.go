package queries

import (
	"errors"
	"strings"

	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery looks up a single order by its number.
type GetOrderQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderNumber string) (GetOrderQuery, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderQuery{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderNumber() string {
	return q.orderNumber
}

type GetOrderQueryResponse = OrderView
