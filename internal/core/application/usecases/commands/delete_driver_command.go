package commands

import (
	"errors"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDriverCommand(driverID kernel.UUID) (DeleteDriverCommand, error) {
	if driverID.Validate() != nil {
		return DeleteDriverCommand{}, errs.NewValueIsRequiredError("driverId")
	}

	return DeleteDriverCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
