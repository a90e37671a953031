package commands

import (
	"errors"
	"fmt"
	"time"

	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrPurgeExpiredCouponsCommandIsNotConstructed = errors.New(
	"PurgeExpiredCouponsCommand must be created via NewPurgeExpiredCouponsCommand constructor",
)

// PurgeExpiredCouponsCommand deletes coupons that expired more than retention
// ago. A zero retention deletes every expired coupon.
type PurgeExpiredCouponsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeExpiredCouponsCommand(retention time.Duration) (PurgeExpiredCouponsCommand, error) {
	if retention < 0 {
		return PurgeExpiredCouponsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"retention", fmt.Errorf("%s is negative", retention))
	}

	return PurgeExpiredCouponsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeExpiredCouponsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredCouponsCommandIsNotConstructed)
}

func (c PurgeExpiredCouponsCommand) Retention() time.Duration {
	return c.retention
}
