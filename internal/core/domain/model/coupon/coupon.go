package coupon

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/ddd"
	"fastereats/internal/pkg/errs"

	"github.com/google/uuid"
)

// CodePrefix starts every generated code.
const CodePrefix = "DISCOUNT-"

// ErrCouponIsNotConstructed is returned for zero-value coupons.
var ErrCouponIsNotConstructed = errors.New("Coupon must be created via NewCoupon constructor")

// Source identifies the order whose total earned the coupon.
type Source struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
}

// Coupon is a single-use fixed discount. It becomes invalid exactly once, at
// redemption, and is unusable after expiresAt even while still valid.
type Coupon struct {
	ddd.BaseAggregate

	code            string
	discountAmount  kernel.Money
	valid           bool
	expiresAt       time.Time
	createdAt       time.Time
	source          *Source
	redeemedOrderID *kernel.UUID
	redeemedAt      *time.Time

	isConstructed bool
}

// GenerateCode returns a fresh human-shareable code such as DISCOUNT-9F86D081.
// Uniqueness against stored codes is checked by the caller.
func GenerateCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return CodePrefix + strings.ToUpper(raw[:8])
}

// NewCoupon mints a valid coupon expiring ttl after now.
func NewCoupon(code string, discountAmount kernel.Money, ttl time.Duration, now time.Time, source *Source) (*Coupon, error) {
	var errList []error
	if !strings.HasPrefix(code, CodePrefix) || len(code) == len(CodePrefix) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q is not a coupon code", code)))
	}
	if discountAmount.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("discountAmount", errors.New("must be greater than 0")))
	}
	if ttl <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl)))
	}
	if source != nil {
		errList = append(errList, source.OrderID.Validate(), source.CustomerID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	c := &Coupon{
		code:           code,
		discountAmount: discountAmount,
		valid:          true,
		createdAt:      now.UTC(),
		expiresAt:      now.UTC().Add(ttl),
		source:         source,
		isConstructed:  true,
	}

	event := MintedEvent{
		BaseEvent:      ddd.NewBaseEvent(MintedEventName),
		Code:           c.code,
		DiscountAmount: discountAmount.String(),
		ExpiresAt:      c.expiresAt,
	}
	if source != nil {
		orderID, customerID := source.OrderID.Bytes(), source.CustomerID.Bytes()
		event.SourceOrderID = &orderID
		event.CustomerID = &customerID
	}
	c.RaiseDomainEvent(event)

	return c, nil
}

// Snapshot is the stored state of a coupon.
type Snapshot struct {
	Code            string
	DiscountAmount  kernel.Money
	Valid           bool
	ExpiresAt       time.Time
	CreatedAt       time.Time
	Source          *Source
	RedeemedOrderID *kernel.UUID
	RedeemedAt      *time.Time
}

// RestoreCoupon rebuilds a coupon from storage.
func RestoreCoupon(s Snapshot) (*Coupon, error) {
	if strings.TrimSpace(s.Code) == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if !s.Valid && s.RedeemedAt == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("coupon", fmt.Errorf("%s is used but has no redemption time", s.Code))
	}
	return &Coupon{
		code:            s.Code,
		discountAmount:  s.DiscountAmount,
		valid:           s.Valid,
		expiresAt:       s.ExpiresAt,
		createdAt:       s.CreatedAt,
		source:          s.Source,
		redeemedOrderID: s.RedeemedOrderID,
		redeemedAt:      s.RedeemedAt,
		isConstructed:   true,
	}, nil
}

func (c *Coupon) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCouponIsNotConstructed
	}
	return nil
}

func (c *Coupon) Code() string                  { return c.code }
func (c *Coupon) DiscountAmount() kernel.Money  { return c.discountAmount }
func (c *Coupon) IsValid() bool                 { return c.valid }
func (c *Coupon) ExpiresAt() time.Time          { return c.expiresAt }
func (c *Coupon) CreatedAt() time.Time          { return c.createdAt }
func (c *Coupon) Source() *Source               { return c.source }
func (c *Coupon) RedeemedOrderID() *kernel.UUID { return c.redeemedOrderID }
func (c *Coupon) RedeemedAt() *time.Time        { return c.redeemedAt }

// IsExpired reports whether now is at or past the expiry.
func (c *Coupon) IsExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

// IsRedeemable reports whether Redeem would succeed at now.
func (c *Coupon) IsRedeemable(now time.Time) bool {
	return c.valid && !c.IsExpired(now)
}

// Redeem consumes the coupon for orderID. The storage layer repeats the same
// check in its conditional update, which is what makes concurrent redemption safe.
func (c *Coupon) Redeem(orderID kernel.UUID, now time.Time) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !c.valid {
		return errs.NewCouponIsInvalidErrorWithCause(c.code, errors.New("already used"))
	}
	if c.IsExpired(now) {
		return errs.NewCouponIsInvalidErrorWithCause(c.code, errors.New("expired"))
	}

	at := now.UTC()
	c.valid = false
	c.redeemedOrderID = &orderID
	c.redeemedAt = &at
	return nil
}
