package couponrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/pkg/ddd"
	"fastereats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCouponRepository implements ports.CouponRepository using GORM.
type GormCouponRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregateID string, aggregate ddd.AggregateRoot)
}

func NewGormCouponRepository(db *gorm.DB, tracker aggregateTracker) *GormCouponRepository {
	return &GormCouponRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a new coupon. A taken code is reported as ValueIsInvalid so
// the minting loop can retry with a fresh one.
func (r *GormCouponRepository) Add(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("code", gorm.ErrDuplicatedKey)
		}
		return pgerr.Classify(err)
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Get loads a coupon by code. An unknown code is *errs.ObjectNotFoundError.
//
// Example:
//
//	c, err := uow.CouponRepository().Get(ctx, "HAPPY-7Q2M")
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return errs.NewCouponIsInvalidError("HAPPY-7Q2M")
//	}
func (r *GormCouponRepository) Get(ctx context.Context, code string) (*coupon.Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", code)
		}
		return nil, pgerr.Classify(err)
	}

	return toDomain(dto)
}

func (r *GormCouponRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CouponDTO{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, pgerr.Classify(err)
	}
	return count > 0, nil
}

// Redeem writes a redemption already applied to the aggregate. The WHERE
// clause repeats the validity and expiry checks, so of several concurrent
// redemptions of the same code exactly one updates a row. The others get
// *errs.CouponIsInvalidError.
//
// Example:
//
//	c, err := coupons.Get(ctx, code)
//	if err != nil {
//	    return err
//	}
//	if err := c.Redeem(o.ID(), time.Now()); err != nil {
//	    return err
//	}
//	if err := coupons.Redeem(ctx, c); err != nil {
//	    return err // lost to a concurrent redemption
//	}
func (r *GormCouponRepository) Redeem(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	redeemedAt := aggregate.RedeemedAt()
	if aggregate.IsValid() || redeemedAt == nil {
		return errs.NewValueIsInvalidErrorWithCause("coupon", errors.New("coupon has not been redeemed"))
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CouponDTO{}).
		Where("code = ? AND valid AND expires_at > ?", dto.Code, *redeemedAt).
		Updates(map[string]any{
			"valid":             false,
			"redeemed_order_id": dto.RedeemedOrderID,
			"redeemed_at":       *redeemedAt,
		})
	if result.Error != nil {
		return pgerr.Classify(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewCouponIsInvalidErrorWithCause(dto.Code, errors.New("already used or expired"))
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Delete removes a coupon; an unknown code is *errs.ObjectNotFoundError.
func (r *GormCouponRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Where("code = ?", code).Delete(&CouponDTO{})
	if result.Error != nil {
		return pgerr.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coupon", code)
	}
	return nil
}

// DeleteExpiredBefore purges coupons that expired before cutoff, redeemed or
// not, and reports how many rows went.
//
// Example:
//
//	n, err := repo.DeleteExpiredBefore(ctx, time.Now().AddDate(0, 0, -30))
func (r *GormCouponRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", cutoff).Delete(&CouponDTO{})
	if result.Error != nil {
		return 0, pgerr.Classify(result.Error)
	}
	return result.RowsAffected, nil
}
