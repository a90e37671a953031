// Package postgres provides the GORM-based Unit of Work, schema migrations and
// the repositories' shared plumbing.
//
// A unit of work owns one database transaction. Repositories obtained from it
// run inside that transaction and register every aggregate they write. On
// Commit the domain events of those aggregates are serialized into
// outbox_messages in the same transaction, so a state change and the news of
// it are stored together or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance must be used by a single goroutine. Concurrent
// requests get separate instances from the factory.
package postgres

import (
	"context"
	"errors"

	"fastereats/internal/adapters/out/postgres/couponrepo"
	"fastereats/internal/adapters/out/postgres/driverrepo"
	"fastereats/internal/adapters/out/postgres/orderrepo"
	"fastereats/internal/adapters/out/postgres/outboxrepo"
	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/ddd"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate ddd.AggregateRoot
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a transaction and the aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op. Repositories
// obtained before Begin run on the pool without a transaction.
//
// A failure to reach the database is returned as
// *errs.ServiceUnavailableError.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Classify(tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit writes pending domain events to the outbox and commits. A commit
// that fails with a connectivity error has an unknown outcome and is reported
// as ServiceUnavailable.
//
// Events are cleared from the tracked aggregates only after a successful
// commit, so a failed commit leaves them in place for the caller to inspect.
//
// Example:
//
//	o.Accept()
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	// OrderAccepted is stored in outbox_messages by the same transaction.
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushDomainEvents(ctx); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return pgerr.Classify(err)
	}

	for _, tracked := range uow.trackedAggregates {
		tracked.Aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction and forgets the tracked aggregates. After
// Commit it returns gorm.ErrInvalidTransaction, which deferred callers ignore.
//
// Example:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }() // no-op once committed
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the pool when none is active. Orders it writes are
// tracked, so their domain events reach the outbox on Commit.
//
// Example:
//
//	o, err := uow.OrderRepository().GetByNumber(ctx, "ORD_20250101_001")
//	if err != nil {
//	    return err
//	}
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CouponRepository returns a coupon repository bound like OrderRepository.
func (uow *GormUnitOfWork) CouponRepository() ports.CouponRepository {
	return couponrepo.NewGormCouponRepository(uow.conn(), uow)
}

// OutboxRepository is used by the relay. Appending is done by Commit itself.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// DriverRepository returns the driver registry. Drivers raise no domain
// events, so nothing it writes is tracked.
//
// Example:
//
//	d, err := uow.DriverRepository().Get(ctx, courierID)
//	if err != nil {
//	    return err // *errs.ObjectNotFoundError for an unknown driver
//	}
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Tracking the same aggregate twice does not duplicate its events.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate ddd.AggregateRoot) {
	for _, tracked := range uow.trackedAggregates {
		if tracked.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) flushDomainEvents(ctx context.Context) error {
	messages := make([]outboxrepo.MessageDTO, 0)
	var errList []error
	for _, tracked := range uow.trackedAggregates {
		for _, event := range tracked.Aggregate.DomainEvents() {
			msg, err := outboxrepo.FromEvent(tracked.ID, event)
			if err != nil {
				errList = append(errList, err)
				continue
			}
			messages = append(messages, msg)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	return outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, messages)
}
