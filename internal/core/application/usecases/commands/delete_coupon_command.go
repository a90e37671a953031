package commands

import (
	"errors"
	"strings"

	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrDeleteCouponCommandIsNotConstructed = errors.New(
	"DeleteCouponCommand must be created via NewDeleteCouponCommand constructor",
)

type DeleteCouponCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

func NewDeleteCouponCommand(code string) (DeleteCouponCommand, error) {
	if strings.TrimSpace(code) == "" {
		return DeleteCouponCommand{}, errs.NewValueIsRequiredError("code")
	}

	return DeleteCouponCommand{
		code:  strings.TrimSpace(code),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCouponCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCouponCommandIsNotConstructed)
}

func (c DeleteCouponCommand) Code() string {
	return c.code
}
