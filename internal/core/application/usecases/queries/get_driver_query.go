package queries

import (
	"errors"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

type GetDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	if driverID.Validate() != nil {
		return GetDriverQuery{}, errs.NewValueIsRequiredError("driverId")
	}
	return GetDriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
