package order

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

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// StatusChange is one entry of the order's status history.
type StatusChange struct {
	From      Status
	To        Status
	ActorID   kernel.UUID
	ChangedAt time.Time
}

// Order is the aggregate root of the order lifecycle and the delivery claim.
//
// Invariants:
//   - courier is set if and only if status is AssignedToCourier or later
//   - totalAmount = subtotal + deliveryFee - discount, floored at zero
//   - customer, restaurant snapshot and cart lines never change after placement
//   - every status change is recorded as a StatusChange and a StatusChangedEvent
//
// The aggregate remembers the version and status it was loaded with. The
// repository writes changes only if the stored row still has both, which makes
// every transition a compare-and-swap.
type Order struct {
	ddd.BaseAggregate

	id              kernel.UUID
	number          string
	customerID      kernel.UUID
	restaurant      Restaurant
	cartLines       []CartLine
	subtotal        kernel.Money
	deliveryFee     kernel.Money
	discount        kernel.Money
	totalAmount     kernel.Money
	paymentMethod   PaymentMethod
	deliveryAddress string
	status          Status
	courier         *Courier
	couponCode      string
	createdAt       time.Time
	updatedAt       time.Time

	version         int
	persistedStatus Status
	pendingHistory  []StatusChange

	isConstructed bool
}

// NewOrder places an order. The total is computed from the cart lines and the
// delivery fee; no discount is applied at placement.
//
// Validation errors for all arguments are collected and returned together.
func NewOrder(
	number string,
	customerID kernel.UUID,
	restaurant Restaurant,
	lines []CartLine,
	deliveryFee kernel.Money,
	paymentMethod PaymentMethod,
	deliveryAddress string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		id:            kernel.NewUUID(),
		deliveryFee:   deliveryFee,
		discount:      kernel.ZeroMoney,
		status:        Placed,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setRestaurant(restaurant),
		o.setCartLines(lines),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.subtotal = kernel.ZeroMoney
	for _, l := range o.cartLines {
		o.subtotal = o.subtotal.Add(l.Total())
	}
	o.recalculateTotal()

	o.pendingHistory = append(o.pendingHistory, StatusChange{
		From: Unknown, To: Placed, ActorID: customerID, ChangedAt: now,
	})
	o.RaiseDomainEvent(PlacedEvent{
		BaseEvent:    ddd.NewBaseEvent(PlacedEventName),
		OrderID:      o.id.Bytes(),
		Number:       o.number,
		CustomerID:   customerID.Bytes(),
		RestaurantID: restaurant.ID().Bytes(),
		TotalAmount:  o.totalAmount.String(),
	})

	return o, nil
}

// Snapshot is the full stored state of an order, used by RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	Number          string
	CustomerID      kernel.UUID
	Restaurant      Restaurant
	CartLines       []CartLine
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Discount        kernel.Money
	PaymentMethod   PaymentMethod
	DeliveryAddress string
	Status          Status
	Courier         *Courier
	CouponCode      string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder rebuilds an order from storage. It re-checks the invariants the
// table constraints also enforce, so a corrupted row surfaces as an error.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		subtotal:        s.Subtotal,
		deliveryFee:     s.DeliveryFee,
		discount:        s.Discount,
		status:          s.Status,
		couponCode:      s.CouponCode,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		version:         s.Version,
		persistedStatus: s.Status,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setCustomerID(s.CustomerID),
		o.setRestaurant(s.Restaurant),
		o.setCartLines(s.CartLines),
		o.setPaymentMethod(s.PaymentMethod),
		o.setDeliveryAddress(s.DeliveryAddress),
		s.Status.Validate(),
		s.Status.ValidateCanHaveCourier(s.Courier != nil),
	); err != nil {
		return nil, err
	}

	if s.Courier != nil {
		c := *s.Courier
		o.courier = &c
	}
	o.recalculateTotal()

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Number() string               { return o.number }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) Restaurant() Restaurant       { return o.restaurant }
func (o *Order) Subtotal() kernel.Money       { return o.subtotal }
func (o *Order) DeliveryFee() kernel.Money    { return o.deliveryFee }
func (o *Order) Discount() kernel.Money       { return o.discount }
func (o *Order) TotalAmount() kernel.Money    { return o.totalAmount }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) DeliveryAddress() string      { return o.deliveryAddress }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CouponCode() string           { return o.couponCode }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

// CartLines returns a copy of the cart.
func (o *Order) CartLines() []CartLine {
	out := make([]CartLine, len(o.cartLines))
	copy(out, o.cartLines)
	return out
}

// Courier returns the courier holding the delivery claim, or nil.
func (o *Order) Courier() *Courier {
	if o.courier == nil {
		return nil
	}
	c := *o.courier
	return &c
}

// Version is the optimistic-concurrency version the order was loaded with.
func (o *Order) Version() int { return o.version }

// PersistedStatus is the status stored when the order was loaded. Conditional
// updates compare against it.
func (o *Order) PersistedStatus() Status { return o.persistedStatus }

// PendingStatusChanges returns history entries not yet written.
func (o *Order) PendingStatusChanges() []StatusChange {
	out := make([]StatusChange, len(o.pendingHistory))
	copy(out, o.pendingHistory)
	return out
}

// MarkPersisted is called by the repository after a successful write.
func (o *Order) MarkPersisted(version int) {
	o.version = version
	o.persistedStatus = o.status
	o.pendingHistory = nil
}

// Decide applies the restaurant's decision. Only the restaurant the order was
// placed with may decide, and only while the order is Placed.
func (o *Order) Decide(restaurantID kernel.UUID, decision Decision) error {
	if !o.restaurant.ID().IsEqual(restaurantID) {
		return errs.NewNotOwnerError("restaurant", restaurantID.String(), o.number)
	}

	var (
		next Status
		err  error
	)
	switch decision {
	case DecisionAccept:
		next, err = o.status.Accept()
	case DecisionDecline:
		next, err = o.status.Decline()
	default:
		return errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%d is not a valid decision", decision))
	}
	if err != nil {
		return err
	}

	o.changeStatus(next, restaurantID)
	return nil
}

// CanApplyCoupon checks the order side of a coupon application without
// changing anything.
func (o *Order) CanApplyCoupon(couponCode string) error {
	if err := o.status.ValidateApplyCoupon(); err != nil {
		return err
	}
	if strings.TrimSpace(couponCode) == "" {
		return errs.NewValueIsRequiredError("couponCode")
	}
	if o.couponCode != "" {
		return errs.NewCouponIsInvalidErrorWithCause(couponCode,
			fmt.Errorf("order %s already has coupon %s applied", o.number, o.couponCode))
	}
	return nil
}

// ApplyDiscount records a redeemed coupon and lowers the total, never below zero.
func (o *Order) ApplyDiscount(couponCode string, amount kernel.Money) error {
	if err := o.CanApplyCoupon(couponCode); err != nil {
		return err
	}

	o.couponCode = couponCode
	o.discount = amount
	o.recalculateTotal()
	o.updatedAt = time.Now().UTC()
	return nil
}

// AssignCourier records the claim of an open job. A second claim on the same
// order is AlreadyClaimed; claims on orders that never became open jobs are
// invalid transitions.
func (o *Order) AssignCourier(c Courier) error {
	if err := c.ID().Validate(); err != nil {
		return err
	}
	if o.courier != nil {
		return errs.NewAlreadyClaimedError(o.number)
	}

	next, err := o.status.AssignToCourier()
	if err != nil {
		return err
	}

	o.courier = &c
	o.changeStatus(next, c.ID())
	return nil
}

// Advance moves a claimed order one step along the delivery sequence on behalf
// of the owning courier.
func (o *Order) Advance(courierID kernel.UUID, next Status) error {
	if o.courier == nil || !o.courier.ID().IsEqual(courierID) {
		return errs.NewNotOwnerError("courier", courierID.String(), o.number)
	}

	newStatus, err := o.status.Advance(next)
	if err != nil {
		return err
	}

	o.changeStatus(newStatus, courierID)
	return nil
}

func (o *Order) changeStatus(to Status, actorID kernel.UUID) {
	now := time.Now().UTC()
	from := o.status
	o.status = to
	o.updatedAt = now

	o.pendingHistory = append(o.pendingHistory, StatusChange{
		From: from, To: to, ActorID: actorID, ChangedAt: now,
	})

	var courierID *uuid.UUID
	if o.courier != nil {
		raw := o.courier.ID().Bytes()
		courierID = &raw
	}
	o.RaiseDomainEvent(StatusChangedEvent{
		BaseEvent:  ddd.NewBaseEvent(StatusChangedEventName),
		OrderID:    o.id.Bytes(),
		Number:     o.number,
		CustomerID: o.customerID.Bytes(),
		From:       from.String(),
		To:         to.String(),
		ActorID:    actorID.Bytes(),
		CourierID:  courierID,
	})
}

func (o *Order) recalculateTotal() {
	o.totalAmount = o.subtotal.Add(o.deliveryFee).SubFloored(o.discount)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurant(r Restaurant) error {
	if err := r.ID().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurant = r
	return nil
}

// setCartLines requires at least one line. Lines are validated by NewCartLine.
func (o *Order) setCartLines(lines []CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}
	for i, l := range lines {
		if l.Quantity() <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("cart", fmt.Errorf("line %d is not constructed", i))
		}
	}
	o.cartLines = make([]CartLine, len(lines))
	copy(o.cartLines, lines)
	return nil
}

func (o *Order) setPaymentMethod(p PaymentMethod) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.paymentMethod = p
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}
