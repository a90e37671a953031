// Package errs provides standardized error types for the order and delivery core.
// Every error kind a caller must be able to branch on has a sentinel variable and
// a struct type carrying details:
//   - ObjectNotFoundError: a lookup by identifier yields nothing
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: malformed input
//   - VersionIsInvalidError: a conditional write lost against a concurrent writer
//   - InvalidTransitionError: a state machine refuses the requested action
//   - AlreadyClaimedError: a courier lost the race for an open job
//   - NotOwnerError: an actor touched an object owned by somebody else
//   - CouponIsInvalidError: unknown, used or expired coupon code
//   - ServiceUnavailableError: storage or connectivity failure, safe to retry after re-reading state
//
// Each type implements Error() and Unwrap() so callers use errors.Is against the
// sentinel and errors.As to reach the details.
package errs
