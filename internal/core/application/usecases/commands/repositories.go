// Package commands contains the operations that change orders and coupons.
// Every handler follows the same shape: validate the command, open a unit of
// work, load aggregates, let the domain decide, write, commit.
package commands

import (
	"context"

	"fastereats/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CouponRepoFactory provides access to the coupon repository within a transaction.
	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// DriverRepoFactory provides access to the driver registry within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CouponUoW manages transactions for coupon-only operations.
	CouponUoW interface {
		TxManager
		CouponRepoFactory
	}

	CouponUoWFactory interface {
		Create() CouponUoW
	}

	// UoW spans orders and coupons. Used where a coupon redemption and an
	// order write must commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetByNumber(ctx, number)
	//   c, err := uow.CouponRepository().Get(ctx, code)
	//   // ... redeem and discount
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CouponRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// DriverUoW manages transactions for the driver registry.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// ClaimUoW reads the claiming driver and writes the order in one
	// transaction, so a driver removed mid-claim cannot be recorded.
	ClaimUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// OutboxUoW is used by the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
