package queries

import (
	"context"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewListOrderHistoryQueryHandler(db *gorm.DB) ListOrderHistoryQueryHandler {
	return ListOrderHistoryQueryHandler{db: db}
}

// Handle returns the status history oldest first. An order always has at
// least its placement entry, so an empty result means the order is unknown.
func (h ListOrderHistoryQueryHandler) Handle(ctx context.Context, query ListOrderHistoryQuery) ([]StatusChangeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.from_status,
			h.to_status,
			h.actor_id,
			h.changed_at
		FROM order_status_history h
		JOIN orders o ON o.id = h.order_id
		WHERE o.number = ?
		ORDER BY h.id
	`, query.OrderNumber()).Rows()
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	defer rows.Close()

	history := make([]StatusChangeView, 0)
	for rows.Next() {
		var (
			change   StatusChangeView
			from, to int
			actorID  uuid.UUID
		)
		if err = rows.Scan(&from, &to, &actorID, &change.ChangedAt); err != nil {
			return nil, pgerr.Classify(err)
		}

		if order.Status(from) != order.Unknown {
			change.From = order.Status(from).String()
		}
		change.To = order.Status(to).String()
		if change.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}
		history = append(history, change)
	}
	if err = rows.Err(); err != nil {
		return nil, pgerr.Classify(err)
	}

	if len(history) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderNumber())
	}

	return history, nil
}
