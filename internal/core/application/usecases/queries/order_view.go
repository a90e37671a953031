// Package queries contains the read side: handlers that answer questions
// about orders, open delivery jobs and coupons with plain SQL over the same
// tables the repositories write. Queries never load aggregates.
package queries

import (
	"context"
	"database/sql"
	"time"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the read model of an order. OrderID is the externally visible
// order number.
type OrderView struct {
	OrderID         string
	CustomerID      kernel.UUID
	Restaurant      RestaurantView
	CartLines       []CartLineView
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Discount        decimal.Decimal
	TotalAmount     decimal.Decimal
	PaymentMethod   string
	DeliveryAddress string
	Status          string
	Courier         *CourierView
	CouponCode      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type RestaurantView struct {
	ID      kernel.UUID
	Name    string
	Address string
}

type CartLineView struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type CourierView struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

const orderViewColumns = `
	o.id,
	o.number,
	o.customer_id,
	o.restaurant_id,
	o.restaurant_name,
	o.restaurant_address,
	o.subtotal,
	o.delivery_fee,
	o.discount,
	o.total_amount,
	o.payment_method,
	o.delivery_address,
	o.status,
	o.courier_id,
	o.courier_name,
	o.courier_phone,
	o.coupon_code,
	o.created_at,
	o.updated_at`

// scanOrderViews reads rows selected with orderViewColumns and attaches their
// cart lines with one extra query.
func scanOrderViews(ctx context.Context, db *gorm.DB, rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			view                       OrderView
			id, customerID, restaurant uuid.UUID
			courierID                  uuid.NullUUID
			courierName, courierPhone  *string
			paymentMethod, status      int
		)

		err := rows.Scan(
			&id,
			&view.OrderID,
			&customerID,
			&restaurant,
			&view.Restaurant.Name,
			&view.Restaurant.Address,
			&view.Subtotal,
			&view.DeliveryFee,
			&view.Discount,
			&view.TotalAmount,
			&paymentMethod,
			&view.DeliveryAddress,
			&status,
			&courierID,
			&courierName,
			&courierPhone,
			&view.CouponCode,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, pgerr.Classify(err)
		}

		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.Restaurant.ID, err = kernel.UUIDFromBytes(restaurant[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			courier := CourierView{Name: deref(courierName), Phone: deref(courierPhone)}
			if courier.ID, err = kernel.UUIDFromBytes(courierID.UUID[:]); err != nil {
				return nil, err
			}
			view.Courier = &courier
		}
		view.PaymentMethod = order.PaymentMethod(paymentMethod).String()
		view.Status = order.Status(status).String()

		views = append(views, view)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Classify(err)
	}

	if len(ids) == 0 {
		return views, nil
	}

	lines, err := loadCartLines(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].CartLines = lines[ids[i]]
	}

	return views, nil
}

func loadCartLines(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]CartLineView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_id,
			name,
			unit_price,
			quantity
		FROM order_cart_lines
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	defer rows.Close()

	lines := make(map[uuid.UUID][]CartLineView, len(orderIDs))
	for rows.Next() {
		var (
			orderID uuid.UUID
			line    CartLineView
		)
		if err = rows.Scan(&orderID, &line.ItemID, &line.Name, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, pgerr.Classify(err)
		}
		lines[orderID] = append(lines[orderID], line)
	}

	return lines, pgerr.Classify(rows.Err())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
