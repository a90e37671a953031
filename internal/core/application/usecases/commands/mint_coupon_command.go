package commands

import (
	"errors"
	"fmt"
	"time"

	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrMintCouponCommandIsNotConstructed = errors.New(
	"MintCouponCommand must be created via NewMintCouponCommand constructor",
)

// MintCouponCommand asks for a new single-use coupon. Source is nil for
// coupons issued outside of an order.
type MintCouponCommand struct { //nolint:recvcheck //using for validation
	discountAmount kernel.Money
	ttl            time.Duration
	source         *coupon.Source

	guard guard.ConstructorGuard
}

func NewMintCouponCommand(discountAmount kernel.Money, ttl time.Duration, source *coupon.Source) (MintCouponCommand, error) {
	cmd := MintCouponCommand{
		guard: guard.NewConstructorGuard(),
	}

	var amountErr, ttlErr error
	if discountAmount.IsZero() {
		amountErr = errs.NewValueIsInvalidErrorWithCause("discountAmount", errors.New("must be greater than 0"))
	}
	if ttl <= 0 {
		ttlErr = errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl))
	}
	if err := errors.Join(amountErr, ttlErr); err != nil {
		return MintCouponCommand{}, err
	}

	cmd.discountAmount = discountAmount
	cmd.ttl = ttl
	cmd.source = source
	return cmd, nil
}

func (c MintCouponCommand) Validate() error {
	return c.guard.Validate(ErrMintCouponCommandIsNotConstructed)
}

func (c MintCouponCommand) DiscountAmount() kernel.Money { return c.discountAmount }
func (c MintCouponCommand) TTL() time.Duration           { return c.ttl }
func (c MintCouponCommand) Source() *coupon.Source       { return c.source }
