// Package order implements the Order aggregate: placement, the restaurant's
// decision, coupon discounts, the courier claim and delivery progress.
//
// The package includes:
//   - Order: the aggregate root with its status history and domain events
//   - Status: the lifecycle state machine
//   - CartLine, Restaurant, Courier: immutable snapshots taken at placement or claim time
//   - PaymentMethod, Decision: small enumerations parsed from the wire
//
// Key business rules:
//   - Placed -> Accepted -> AssignedToCourier -> PickedUp -> InTransit -> Delivered
//   - Declined is terminal and only reachable before a courier is involved
//   - only the owning restaurant decides, only the owning courier advances
//   - a coupon can be applied once, and only while the order is Placed
//   - the total never drops below zero
package order
