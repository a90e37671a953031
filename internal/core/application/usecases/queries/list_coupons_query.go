package queries

import (
	"errors"
	"time"

	"fastereats/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrListCouponsQueryIsNotConstructed = errors.New(
	"ListCouponsQuery must be created via NewListCouponsQuery constructor",
)

// ListCouponsQuery returns every stored coupon, newest first.
type ListCouponsQuery struct {
	guard guard.ConstructorGuard
}

func NewListCouponsQuery() ListCouponsQuery {
	return ListCouponsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCouponsQuery) Validate() error {
	return q.guard.Validate(ErrListCouponsQueryIsNotConstructed)
}

type CouponView struct {
	Code            string
	DiscountAmount  decimal.Decimal
	Valid           bool
	ExpiresAt       time.Time
	CreatedAt       time.Time
	SourceOrderID   *uuid.UUID
	RedeemedOrderID *uuid.UUID
	RedeemedAt      *time.Time
}
