// Package driver implements the driver registry: the couriers allowed to claim
// delivery jobs, with their licence, vehicle and payout details.
//
// A claim resolves the courier's name and phone from the registry and
// refuses couriers whose licence has expired. The order keeps its own copy of
// name and phone, so later edits or removal of a driver never rewrite the
// delivery record of past orders.
package driver
