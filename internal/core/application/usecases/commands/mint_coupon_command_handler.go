package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
)

// maxCodeAttempts bounds the search for an unused coupon code.
const maxCodeAttempts = 5

var ErrCouponCodesExhausted = errors.New("could not find an unused coupon code")

type MintCouponCommandResponse struct {
	Code           string
	DiscountAmount kernel.Money
	ExpiresAt      time.Time
}

// MintCouponCommandHandler creates coupons with unique codes. A candidate code
// is checked with a lookup first; the unique index catches the race between
// that lookup and the insert. Either way the next attempt gets a fresh code
// and a fresh transaction.
type MintCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewMintCouponCommandHandler(uowFactory CouponUoWFactory) MintCouponCommandHandler {
	return MintCouponCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *MintCouponCommandHandler) Handle(ctx context.Context, cmd MintCouponCommand) (MintCouponCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return MintCouponCommandResponse{}, err
	}

	for range maxCodeAttempts {
		c, err := h.tryMint(ctx, cmd, coupon.GenerateCode())
		if err != nil {
			return MintCouponCommandResponse{}, err
		}
		if c == nil {
			continue
		}

		return MintCouponCommandResponse{
			Code:           c.Code(),
			DiscountAmount: c.DiscountAmount(),
			ExpiresAt:      c.ExpiresAt(),
		}, nil
	}

	return MintCouponCommandResponse{}, fmt.Errorf("%w after %d attempts", ErrCouponCodesExhausted, maxCodeAttempts)
}

// tryMint returns a nil coupon and no error when the code is taken.
func (h *MintCouponCommandHandler) tryMint(ctx context.Context, cmd MintCouponCommand, code string) (*coupon.Coupon, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	couponRepo := uow.CouponRepository()
	exists, err := couponRepo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	c, err := coupon.NewCoupon(code, cmd.DiscountAmount(), cmd.TTL(), time.Now().UTC(), cmd.Source())
	if err != nil {
		return nil, err
	}

	err = couponRepo.Add(ctx, c)
	if errors.Is(err, errs.ErrValueIsInvalid) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
