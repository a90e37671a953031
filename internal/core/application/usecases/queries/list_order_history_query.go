package queries

import (
	"errors"
	"strings"
	"time"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrListOrderHistoryQueryIsNotConstructed = errors.New(
	"ListOrderHistoryQuery must be created via NewListOrderHistoryQuery constructor",
)

type ListOrderHistoryQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

func NewListOrderHistoryQuery(orderNumber string) (ListOrderHistoryQuery, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return ListOrderHistoryQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return ListOrderHistoryQuery{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListOrderHistoryQueryIsNotConstructed)
}

func (q ListOrderHistoryQuery) OrderNumber() string {
	return q.orderNumber
}

// StatusChangeView is one history entry. From is empty for the placement.
type StatusChangeView struct {
	From      string
	To        string
	ActorID   kernel.UUID
	ChangedAt time.Time
}
