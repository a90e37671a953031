package queries

import (
	"context"
	"time"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOpenJobsQueryHandler reads the open-job pool. Each page is one indexed
// range scan; nothing is held between pages, so a consumer can stop at any
// page and resume later from its cursor.
type ListOpenJobsQueryHandler struct {
	db *gorm.DB
}

func NewListOpenJobsQueryHandler(db *gorm.DB) ListOpenJobsQueryHandler {
	return ListOpenJobsQueryHandler{db: db}
}

func (h ListOpenJobsQueryHandler) Handle(ctx context.Context, query ListOpenJobsQuery) (ListOpenJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOpenJobsQueryResponse{}, err
	}

	after := Cursor{CreatedAt: time.Unix(0, 0).UTC()}
	if query.After() != nil {
		after = *query.After()
	}

	// One extra row tells whether another page exists.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			restaurant_name,
			restaurant_address,
			delivery_address,
			total_amount,
			payment_method,
			created_at
		FROM orders
		WHERE status = ?
			AND (created_at, id) > (?, ?)
		ORDER BY created_at, id
		LIMIT ?
	`, int(order.Accepted), after.CreatedAt, after.ID, query.Limit()+1).Rows()
	if err != nil {
		return ListOpenJobsQueryResponse{}, pgerr.Classify(err)
	}
	defer rows.Close()

	resp := ListOpenJobsQueryResponse{Jobs: make([]OpenJobView, 0, query.Limit())}
	var last Cursor
	for rows.Next() {
		var (
			job           OpenJobView
			id            uuid.UUID
			paymentMethod int
		)
		err = rows.Scan(
			&id,
			&job.OrderID,
			&job.RestaurantName,
			&job.RestaurantAddress,
			&job.DeliveryAddress,
			&job.TotalAmount,
			&paymentMethod,
			&job.CreatedAt,
		)
		if err != nil {
			return ListOpenJobsQueryResponse{}, pgerr.Classify(err)
		}

		if len(resp.Jobs) == query.Limit() {
			resp.Next = &last
			break
		}

		job.PaymentMethod = order.PaymentMethod(paymentMethod).String()
		resp.Jobs = append(resp.Jobs, job)
		last = Cursor{CreatedAt: job.CreatedAt, ID: id}
	}
	if err = rows.Err(); err != nil {
		return ListOpenJobsQueryResponse{}, pgerr.Classify(err)
	}

	return resp, nil
}
