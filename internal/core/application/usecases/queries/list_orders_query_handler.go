package queries

import (
	"context"
	"strings"

	"fastereats/internal/adapters/out/postgres/pgerr"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns matching orders, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if id := query.CustomerID(); id != nil {
		conditions = append(conditions, "o.customer_id = ?")
		args = append(args, id.Bytes())
	}
	if id := query.RestaurantID(); id != nil {
		conditions = append(conditions, "o.restaurant_id = ?")
		args = append(args, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o
		WHERE `+strings.Join(conditions, " AND ")+`
		ORDER BY o.created_at DESC, o.id DESC
	`, args...).Rows()
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	defer rows.Close()

	return scanOrderViews(ctx, h.db, rows)
}
