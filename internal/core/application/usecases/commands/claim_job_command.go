package commands

import (
	"errors"
	"strings"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrClaimJobCommandIsNotConstructed = errors.New(
	"ClaimJobCommand must be created via NewClaimJobCommand constructor",
)

// ClaimJobCommand is a registered driver's attempt to take an open delivery job.
//
// Example:
//
//	cmd, _ := NewClaimJobCommand("ORD_20250101_001", driverID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAlreadyClaimed) {
//	    // another courier was faster
//	}
type ClaimJobCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	courierID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimJobCommand(orderNumber string, courierID kernel.UUID) (ClaimJobCommand, error) {
	var numberErr, courierErr error
	if strings.TrimSpace(orderNumber) == "" {
		numberErr = errs.NewValueIsRequiredError("orderId")
	}
	if courierID.Validate() != nil {
		courierErr = errs.NewValueIsRequiredError("courierId")
	}
	if err := errors.Join(numberErr, courierErr); err != nil {
		return ClaimJobCommand{}, err
	}

	return ClaimJobCommand{
		orderNumber: orderNumber,
		courierID:   courierID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimJobCommand) Validate() error {
	return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
}

func (c ClaimJobCommand) OrderNumber() string    { return c.orderNumber }
func (c ClaimJobCommand) CourierID() kernel.UUID { return c.courierID }
