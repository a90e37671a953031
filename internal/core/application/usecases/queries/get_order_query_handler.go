package queries

import (
	"context"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for unknown numbers.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o
		WHERE o.number = ?
	`, query.OrderNumber()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, pgerr.Classify(err)
	}
	defer rows.Close()

	views, err := scanOrderViews(ctx, h.db, rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(views) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderNumber())
	}

	return views[0], nil
}
