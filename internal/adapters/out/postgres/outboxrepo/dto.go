// Package outboxrepo stores domain events written by the unit of work and
// hands them to the relay.
package outboxrepo

import (
	"encoding/json"
	"time"

	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/ddd"

	"github.com/google/uuid"
)

// MessageDTO maps outbox_messages.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AggregateID string    `gorm:"type:varchar(64)"`
	EventType   string    `gorm:"type:varchar(64)"`
	Payload     []byte    `gorm:"type:jsonb"`
	OccurredAt  time.Time
	ProcessedAt *time.Time
	LockedUntil *time.Time
	Attempts    int
	LastError   *string
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// DeliveryDTO maps outbox_deliveries: one row per subscriber that handled a
// message.
type DeliveryDTO struct {
	MessageID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Handler     string    `gorm:"type:varchar(64);primaryKey"`
	DeliveredAt time.Time
}

func (DeliveryDTO) TableName() string {
	return "outbox_deliveries"
}

// FromEvent serializes a domain event into an outbox row.
func FromEvent(aggregateID string, event ddd.DomainEvent) (MessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return MessageDTO{}, err
	}
	return MessageDTO{
		ID:          event.EventID(),
		AggregateID: aggregateID,
		EventType:   event.EventName(),
		Payload:     payload,
		OccurredAt:  event.OccurredAt(),
	}, nil
}

func toPort(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          dto.ID,
		AggregateID: dto.AggregateID,
		EventType:   dto.EventType,
		Payload:     json.RawMessage(dto.Payload),
		OccurredAt:  dto.OccurredAt,
		Attempts:    dto.Attempts,
	}
}
