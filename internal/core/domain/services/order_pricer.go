package services

import (
	"errors"
	"fmt"
	"time"

	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"
)

// OrderPricer holds the pricing rules that span orders and coupons: the
// delivery fee charged on placement, the threshold above which an order earns
// a coupon, and how a coupon discounts an order.
//
// Example usage:
//
//	pricer, _ := services.NewOrderPricer(fee, threshold, discount, 7*24*time.Hour)
//	o, _ := order.NewOrder(number, customerID, restaurant, lines, pricer.DeliveryFee(), order.Card, address)
//	if pricer.EarnsCoupon(o) {
//	    amount, ttl := pricer.CouponTerms()
//	    // mint a coupon for the customer
//	}
type OrderPricer struct {
	deliveryFee     kernel.Money
	couponThreshold kernel.Money
	couponDiscount  kernel.Money
	couponTTL       time.Duration
}

func NewOrderPricer(
	deliveryFee kernel.Money,
	couponThreshold kernel.Money,
	couponDiscount kernel.Money,
	couponTTL time.Duration,
) (OrderPricer, error) {
	var errList []error
	if couponDiscount.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("couponDiscount", errors.New("must be greater than 0")))
	}
	if couponTTL <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("couponTTL", fmt.Errorf("%s is not positive", couponTTL)))
	}
	if err := errors.Join(errList...); err != nil {
		return OrderPricer{}, err
	}

	return OrderPricer{
		deliveryFee:     deliveryFee,
		couponThreshold: couponThreshold,
		couponDiscount:  couponDiscount,
		couponTTL:       couponTTL,
	}, nil
}

// DeliveryFee is added to every new order.
func (p OrderPricer) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// EarnsCoupon reports whether the order total strictly exceeds the threshold.
func (p OrderPricer) EarnsCoupon(o *order.Order) bool {
	if o.Validate() != nil {
		return false
	}
	return o.TotalAmount().GreaterThan(p.couponThreshold)
}

// CouponTerms returns the discount and lifetime of minted coupons.
func (p OrderPricer) CouponTerms() (kernel.Money, time.Duration) {
	return p.couponDiscount, p.couponTTL
}

// ApplyCoupon redeems c against o and discounts o. The order is checked first
// so that a coupon is never consumed for an order that cannot take it.
func (p OrderPricer) ApplyCoupon(o *order.Order, c *coupon.Coupon, now time.Time) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}

	if err := o.CanApplyCoupon(c.Code()); err != nil {
		return err
	}

	if err := c.Redeem(o.ID(), now); err != nil {
		return err
	}

	return o.ApplyDiscount(c.Code(), c.DiscountAmount())
}
