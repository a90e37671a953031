// Package kernel holds the value objects shared by every aggregate of the
// order and delivery core:
//   - UUID: identifiers of customers, restaurants, couriers and orders
//   - Money: non-negative decimal amounts used for prices, fees, discounts and totals
//
// Both are immutable and reject their zero values where a zero value would
// hide a missing input.
package kernel
