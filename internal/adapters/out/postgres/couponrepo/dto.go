// Package couponrepo persists coupons.
package couponrepo

import (
	"time"

	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponDTO maps the coupons table.
type CouponDTO struct {
	Code            string          `gorm:"type:varchar(32);primaryKey"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Valid           bool
	ExpiresAt       time.Time
	CreatedAt       time.Time
	SourceOrderID   *uuid.UUID `gorm:"type:uuid"`
	CustomerID      *uuid.UUID `gorm:"type:uuid"`
	RedeemedOrderID *uuid.UUID `gorm:"type:uuid"`
	RedeemedAt      *time.Time
}

func (CouponDTO) TableName() string {
	return "coupons"
}

func fromDomain(c *coupon.Coupon) CouponDTO {
	dto := CouponDTO{
		Code:           c.Code(),
		DiscountAmount: c.DiscountAmount().Decimal(),
		Valid:          c.IsValid(),
		ExpiresAt:      c.ExpiresAt(),
		CreatedAt:      c.CreatedAt(),
		RedeemedAt:     c.RedeemedAt(),
	}
	if s := c.Source(); s != nil {
		orderID, customerID := s.OrderID.Bytes(), s.CustomerID.Bytes()
		dto.SourceOrderID, dto.CustomerID = &orderID, &customerID
	}
	if id := c.RedeemedOrderID(); id != nil {
		raw := id.Bytes()
		dto.RedeemedOrderID = &raw
	}
	return dto
}

func toDomain(dto CouponDTO) (*coupon.Coupon, error) {
	amount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}

	var source *coupon.Source
	if dto.SourceOrderID != nil && dto.CustomerID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.SourceOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		customerID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		source = &coupon.Source{OrderID: orderID, CustomerID: customerID}
	}

	var redeemedOrderID *kernel.UUID
	if dto.RedeemedOrderID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.RedeemedOrderID)[:])
		if idErr != nil {
			return nil, idErr
		}
		redeemedOrderID = &id
	}

	return coupon.RestoreCoupon(coupon.Snapshot{
		Code:            dto.Code,
		DiscountAmount:  amount,
		Valid:           dto.Valid,
		ExpiresAt:       dto.ExpiresAt,
		CreatedAt:       dto.CreatedAt,
		Source:          source,
		RedeemedOrderID: redeemedOrderID,
		RedeemedAt:      dto.RedeemedAt,
	})
}
