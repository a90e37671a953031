package commands

import (
	"errors"

	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	profile driver.Profile

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(profile driver.Profile) (RegisterDriverCommand, error) {
	if err := profile.Validate(); err != nil {
		return RegisterDriverCommand{}, err
	}

	return RegisterDriverCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) Profile() driver.Profile { return c.profile }
