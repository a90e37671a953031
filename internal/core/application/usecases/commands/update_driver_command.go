package commands

import (
	"errors"

	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand replaces a driver's whole profile.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	profile  driver.Profile

	guard guard.ConstructorGuard
}

func NewUpdateDriverCommand(driverID kernel.UUID, profile driver.Profile) (UpdateDriverCommand, error) {
	var idErr error
	if driverID.Validate() != nil {
		idErr = errs.NewValueIsRequiredError("driverId")
	}
	if err := errors.Join(idErr, profile.Validate()); err != nil {
		return UpdateDriverCommand{}, err
	}

	return UpdateDriverCommand{
		driverID: driverID,
		profile:  profile,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

func (c UpdateDriverCommand) DriverID() kernel.UUID   { return c.driverID }
func (c UpdateDriverCommand) Profile() driver.Profile { return c.profile }
