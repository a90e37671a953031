package queries

import (
	"context"

	"fastereats/internal/adapters/out/postgres/pgerr"

	"gorm.io/gorm"
)

type ListCouponsQueryHandler struct {
	db *gorm.DB
}

func NewListCouponsQueryHandler(db *gorm.DB) ListCouponsQueryHandler {
	return ListCouponsQueryHandler{db: db}
}

func (h ListCouponsQueryHandler) Handle(ctx context.Context, query ListCouponsQuery) ([]CouponView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			discount_amount,
			valid,
			expires_at,
			created_at,
			source_order_id,
			redeemed_order_id,
			redeemed_at
		FROM coupons
		ORDER BY created_at DESC, code
	`).Rows()
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	defer rows.Close()

	coupons := make([]CouponView, 0)
	for rows.Next() {
		var c CouponView
		err = rows.Scan(
			&c.Code,
			&c.DiscountAmount,
			&c.Valid,
			&c.ExpiresAt,
			&c.CreatedAt,
			&c.SourceOrderID,
			&c.RedeemedOrderID,
			&c.RedeemedAt,
		)
		if err != nil {
			return nil, pgerr.Classify(err)
		}
		coupons = append(coupons, c)
	}
	if err = rows.Err(); err != nil {
		return nil, pgerr.Classify(err)
	}

	return coupons, nil
}
