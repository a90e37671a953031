package order

import (
	"fastereats/internal/pkg/ddd"

	"github.com/google/uuid"
)

const (
	PlacedEventName        = "order.placed"
	StatusChangedEventName = "order.status_changed"
)

// PlacedEvent triggers invoice rendering and the customer notification.
type PlacedEvent struct {
	ddd.BaseEvent
	OrderID      uuid.UUID `json:"orderId"`
	Number       string    `json:"orderNumber"`
	CustomerID   uuid.UUID `json:"customerId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	TotalAmount  string    `json:"totalAmount"`
}

// StatusChangedEvent is raised on every transition after placement. Consumers
// must be idempotent by EventID.
type StatusChangedEvent struct {
	ddd.BaseEvent
	OrderID    uuid.UUID  `json:"orderId"`
	Number     string     `json:"orderNumber"`
	CustomerID uuid.UUID  `json:"customerId"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	ActorID    uuid.UUID  `json:"actorId"`
	CourierID  *uuid.UUID `json:"courierId,omitempty"`
}
