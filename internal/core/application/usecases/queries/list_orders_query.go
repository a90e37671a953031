package queries

import (
	"errors"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders of a customer, of a restaurant, or of a
// customer at one restaurant. At least one filter is required.
//
// Example:
//
//	query, _ := NewListOrdersQuery(&customerID, nil)
//	orders, err := handler.Handle(ctx, query)
//	// orders[0] is the customer's most recent order
type ListOrdersQuery struct {
	customerID   *kernel.UUID
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(customerID, restaurantID *kernel.UUID) (ListOrdersQuery, error) {
	if customerID == nil && restaurantID == nil {
		return ListOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause(
			"customerId", errors.New("customerId or restaurantId must be given"))
	}

	var errList []error
	if customerID != nil {
		errList = append(errList, customerID.Validate())
	}
	if restaurantID != nil {
		errList = append(errList, restaurantID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		customerID:   customerID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) CustomerID() *kernel.UUID   { return q.customerID }
func (q ListOrdersQuery) RestaurantID() *kernel.UUID { return q.restaurantID }
