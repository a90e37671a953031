package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact raised by an aggregate. Events are written to the
// outbox in the same transaction as the aggregate and delivered afterwards, at
// least once.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
}

// AggregateRoot is implemented by aggregates whose changes produce events.
type AggregateRoot interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseEvent carries the identity and timestamp common to every event. Concrete
// events embed it and add their own exported payload fields.
type BaseEvent struct {
	ID   uuid.UUID `json:"eventId"`
	Name string    `json:"eventName"`
	At   time.Time `json:"occurredAt"`
}

// NewBaseEvent stamps a new event with a random id and the current UTC time.
func NewBaseEvent(name string) BaseEvent {
	return BaseEvent{ID: uuid.New(), Name: name, At: time.Now().UTC()}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) EventName() string     { return e.Name }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// BaseAggregate collects raised events until the unit of work flushes them.
type BaseAggregate struct {
	domainEvents []DomainEvent
}

// RaiseDomainEvent appends an event.
func (a *BaseAggregate) RaiseDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// DomainEvents returns a copy of the pending events.
func (a *BaseAggregate) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(a.domainEvents))
	copy(out, a.domainEvents)
	return out
}

func (a *BaseAggregate) ClearDomainEvents() {
	a.domainEvents = nil
}
