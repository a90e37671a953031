package order

import (
	"fmt"

	"fastereats/internal/pkg/errs"
)

// Decision is the restaurant's answer to a placed order.
type Decision int

const (
	UnknownDecision Decision = iota
	DecisionAccept
	DecisionDecline
)

func (d Decision) String() string {
	switch d {
	case DecisionAccept:
		return "Accept"
	case DecisionDecline:
		return "Decline"
	default:
		return "Unknown"
	}
}

// ParseDecision accepts the wire names "Accept" and "Decline".
func ParseDecision(s string) (Decision, error) {
	switch s {
	case "Accept":
		return DecisionAccept, nil
	case "Decline":
		return DecisionDecline, nil
	default:
		return UnknownDecision, errs.NewValueIsInvalidErrorWithCause(
			"decision", fmt.Errorf("%q is not Accept or Decline", s))
	}
}
