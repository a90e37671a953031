package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Domain events raised by
// aggregates written through its repositories are stored in the outbox as part
// of Commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit flushes tracked domain events to the outbox and commits.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Calling it after Commit is a no-op error.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	CouponRepository() CouponRepository

	OutboxRepository() OutboxRepository

	DriverRepository() DriverRepository
}
