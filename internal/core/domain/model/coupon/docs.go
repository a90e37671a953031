// Package coupon implements single-use discount codes minted for high-value
// orders and redeemable on any later order until they expire.
package coupon
