package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a domain event waiting for delivery.
type OutboxMessage struct {
	ID          uuid.UUID
	AggregateID string
	EventType   string
	Payload     json.RawMessage
	OccurredAt  time.Time
	Attempts    int
}

// OutboxRepository reads and acknowledges outbox messages. Messages are
// written by the unit of work on commit, never directly.
type OutboxRepository interface {
	// ClaimPending leases up to limit undelivered messages, oldest first. A
	// leased message is invisible to other relays until it is acknowledged or
	// the lease runs out, so the caller must commit the claim before
	// dispatching.
	//
	// Usage:
	//
	//	messages, err := repo.ClaimPending(ctx, 50, 10, time.Minute)
	//	if err != nil {
	//	    return err
	//	}
	//	return uow.Commit(ctx)
	ClaimPending(ctx context.Context, limit int, maxAttempts int, lease time.Duration) ([]OutboxMessage, error)

	// MarkProcessed records successful delivery and releases the lease.
	MarkProcessed(ctx context.Context, id uuid.UUID) error

	// MarkFailed increments the attempt counter, stores the error text and
	// releases the lease so the next relay pass retries the message.
	MarkFailed(ctx context.Context, id uuid.UUID, cause error) error

	// DeliveredHandlers lists the subscribers that already handled the
	// message on an earlier attempt.
	DeliveredHandlers(ctx context.Context, id uuid.UUID) ([]string, error)

	// RecordDelivery marks the message as handled by one subscriber.
	// Recording the same subscriber twice is a no-op.
	RecordDelivery(ctx context.Context, id uuid.UUID, handler string) error
}
