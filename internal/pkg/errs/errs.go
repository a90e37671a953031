package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrVersionIsInvalid   = errors.New("version is invalid")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrAlreadyClaimed     = errors.New("already claimed")
	ErrNotOwner           = errors.New("not owner")
	ErrCouponIsInvalid    = errors.New("coupon is invalid")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// ObjectNotFoundError is returned when a lookup by identifier yields nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed input value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError is returned when a conditional write finds that the
// stored object no longer has the version the caller read.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidTransitionError is returned when a state machine refuses an action
// from its current state.
type InvalidTransitionError struct {
	From   string
	Action string
	Cause  error
}

func NewInvalidTransitionError(from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

func NewInvalidTransitionErrorWithCause(from, action string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s is not a valid status to %s", ErrInvalidTransition, e.From, e.Action)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyClaimedError is returned to a courier who lost the race for a job.
type AlreadyClaimedError struct {
	ID any
}

func NewAlreadyClaimedError(id any) *AlreadyClaimedError {
	return &AlreadyClaimedError{ID: id}
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s: %s was taken by another courier", ErrAlreadyClaimed, sanitize(e.ID))
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}

// NotOwnerError is returned when an actor touches an object that belongs to
// somebody else.
type NotOwnerError struct {
	ParamName string
	ActorID   any
	ID        any
}

func NewNotOwnerError(paramName string, actorID, id any) *NotOwnerError {
	return &NotOwnerError{ParamName: paramName, ActorID: actorID, ID: id}
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("%s: %s %s does not own %s", ErrNotOwner, e.ParamName, sanitize(e.ActorID), sanitize(e.ID))
}

func (e *NotOwnerError) Unwrap() error {
	return ErrNotOwner
}

// CouponIsInvalidError covers unknown, used and expired coupon codes alike.
type CouponIsInvalidError struct {
	Code  string
	Cause error
}

func NewCouponIsInvalidError(code string) *CouponIsInvalidError {
	return &CouponIsInvalidError{Code: code}
}

func NewCouponIsInvalidErrorWithCause(code string, cause error) *CouponIsInvalidError {
	return &CouponIsInvalidError{Code: code, Cause: cause}
}

func (e *CouponIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrCouponIsInvalid, sanitize(e.Code), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrCouponIsInvalid, sanitize(e.Code))
}

func (e *CouponIsInvalidError) Unwrap() error {
	return ErrCouponIsInvalid
}

// ServiceUnavailableError wraps storage or connectivity failures. The outcome
// of a write that failed this way is unknown and must be re-read, not assumed.
type ServiceUnavailableError struct {
	ServiceName string
	Cause       error
}

func NewServiceUnavailableError(serviceName string, cause error) *ServiceUnavailableError {
	return &ServiceUnavailableError{ServiceName: serviceName, Cause: cause}
}

func (e *ServiceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrServiceUnavailable, e.ServiceName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrServiceUnavailable, e.ServiceName)
}

func (e *ServiceUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrServiceUnavailable}
	}
	return []error{ErrServiceUnavailable, e.Cause}
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
