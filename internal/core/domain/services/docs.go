// Package services provides domain services for rules that don't belong to a
// single aggregate.
//
// The package includes:
//   - OrderPricer: delivery fee, coupon eligibility and coupon application
package services
