// Package ports defines the contracts between the order/delivery core and its
// adapters: repositories, the unit of work and the external collaborators.
package ports

import (
	"context"
	"time"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
)

// OrderRepository is the only way order rows are written. Every write is a
// conditional update so that concurrent transitions cannot both succeed.
type OrderRepository interface {
	// Add persists a newly placed order with its cart lines and first history entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate if and only if the stored row still has the
	// version and status the aggregate was loaded with. Pending status changes
	// are appended to the history in the same statement batch.
	//
	// Returns *errs.VersionIsInvalidError when the row changed underneath; the
	// caller must re-read before deciding what happened.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber loads an order by its externally visible number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// NextNumber allocates the next ORD_<yyyymmdd>_<seq> number for day.
	NextNumber(ctx context.Context, day time.Time) (string, error)
}
