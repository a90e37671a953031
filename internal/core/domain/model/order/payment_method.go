package order

import (
	"fmt"

	"fastereats/internal/pkg/errs"
)

// PaymentMethod is how the customer pays. Persisted as its numeric value.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	Card
	Cash
)

func (p PaymentMethod) String() string {
	switch p {
	case Card:
		return "Card"
	case Cash:
		return "Cash"
	default:
		return "Unknown"
	}
}

func (p PaymentMethod) Validate() error {
	if p != Card && p != Cash {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// ParsePaymentMethod accepts the wire names "Card" and "Cash".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "Card":
		return Card, nil
	case "Cash":
		return Cash, nil
	default:
		return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%q is not Card or Cash", s))
	}
}
