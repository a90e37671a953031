package ports

import (
	"context"
	"time"

	"fastereats/internal/core/domain/model/coupon"
)

// CouponRepository persists coupons.
type CouponRepository interface {
	// Add stores a freshly minted coupon. A duplicate code is reported as
	// *errs.ValueIsInvalidError wrapping gorm.ErrDuplicatedKey.
	Add(ctx context.Context, aggregate *coupon.Coupon) error

	// Get loads a coupon by code.
	Get(ctx context.Context, code string) (*coupon.Coupon, error)

	// ExistsByCode is the cheap pre-check used while generating codes.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Redeem flips valid to false if and only if the stored coupon is still
	// valid and unexpired at the redemption time. Zero affected rows is reported
	// as *errs.CouponIsInvalidError.
	Redeem(ctx context.Context, aggregate *coupon.Coupon) error

	// Delete removes a coupon by code.
	Delete(ctx context.Context, code string) error

	// DeleteExpiredBefore removes coupons that expired before cutoff and
	// returns how many were removed.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
