package commands

import (
	"errors"
	"strings"

	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrApplyCouponCommandIsNotConstructed = errors.New(
	"ApplyCouponCommand must be created via NewApplyCouponCommand constructor",
)

type ApplyCouponCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	couponCode  string

	guard guard.ConstructorGuard
}

func NewApplyCouponCommand(orderNumber, couponCode string) (ApplyCouponCommand, error) {
	var numberErr, codeErr error
	if strings.TrimSpace(orderNumber) == "" {
		numberErr = errs.NewValueIsRequiredError("orderId")
	}
	if strings.TrimSpace(couponCode) == "" {
		codeErr = errs.NewValueIsRequiredError("couponCode")
	}
	if err := errors.Join(numberErr, codeErr); err != nil {
		return ApplyCouponCommand{}, err
	}

	return ApplyCouponCommand{
		orderNumber: orderNumber,
		couponCode:  strings.TrimSpace(couponCode),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyCouponCommand) Validate() error {
	return c.guard.Validate(ErrApplyCouponCommandIsNotConstructed)
}

func (c ApplyCouponCommand) OrderNumber() string { return c.orderNumber }
func (c ApplyCouponCommand) CouponCode() string  { return c.couponCode }
