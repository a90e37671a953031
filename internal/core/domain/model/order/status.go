package order

import (
	"fmt"

	"fastereats/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Accepted ──> AssignedToCourier ──> PickedUp ──> InTransit ──> Delivered
//	  │           │
//	  └───────────┴──> Declined
//
// Placed is initial. Delivered and Declined are terminal. The numeric values
// are persisted and must not be reordered.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Placed is the state of a freshly created order awaiting the restaurant's decision.
	Placed

	// Accepted orders are open jobs: visible to couriers and claimable.
	Accepted

	// Declined is terminal.
	Declined

	// AssignedToCourier means exactly one courier won the claim.
	AssignedToCourier

	PickedUp

	InTransit

	// Delivered is terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Placed:            "Placed",
		Accepted:          "Accepted",
		Declined:          "Declined",
		AssignedToCourier: "AssignedToCourier",
		PickedUp:          "PickedUp",
		InTransit:         "InTransit",
		Delivered:         "Delivered",
	}
}

// deliverySuccessors is the fixed courier-driven sequence. Advance accepts only
// the immediate successor of the current state.
func deliverySuccessors() map[Status]Status {
	//nolint:exhaustive // only courier-owned states have a successor
	return map[Status]Status{
		AssignedToCourier: PickedUp,
		PickedUp:          InTransit,
		InTransit:         Delivered,
	}
}

// ParseStatus converts the wire name of a status back to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. from a corrupted row.
func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Declined
}

// IsOpen reports whether the order is an open job.
func (s Status) IsOpen() bool {
	return s == Accepted
}

// RequiresCourier reports whether a courier must be recorded in state s.
func (s Status) RequiresCourier() bool {
	return s == AssignedToCourier || s == PickedUp || s == InTransit || s == Delivered
}

// ValidateCanHaveCourier enforces: courier present if and only if the status
// belongs to the courier-owned part of the lifecycle.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && !s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Accept transitions Placed to Accepted.
func (s Status) Accept() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "accept")
	}
	return Accepted, nil
}

// Decline transitions Placed to Declined. Once accepted, an order is an open
// job and can no longer be turned down.
func (s Status) Decline() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "decline")
	}
	return Declined, nil
}

// AssignToCourier transitions an open job to AssignedToCourier.
func (s Status) AssignToCourier() (Status, error) {
	if !s.IsOpen() {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "assign to courier")
	}
	return AssignedToCourier, nil
}

// Advance moves along the delivery sequence. Skipping a state or going
// backwards is an invalid transition.
func (s Status) Advance(next Status) (Status, error) {
	successor, ok := deliverySuccessors()[s]
	if !ok || successor != next {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "advance to "+next.String())
	}
	return successor, nil
}

// ValidateApplyCoupon allows discounts only while the order is still mutable.
func (s Status) ValidateApplyCoupon() error {
	if s != Placed {
		return errs.NewInvalidTransitionError(s.String(), "apply coupon")
	}
	return nil
}
