// Package orderrepo persists the Order aggregate: the orders row, its cart
// lines and its status history.
package orderrepo

import (
	"time"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO maps the orders table.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number          string          `gorm:"type:varchar(32);uniqueIndex"`
	CustomerID      uuid.UUID       `gorm:"type:uuid"`
	Restaurant      RestaurantDTO   `gorm:"embedded;embeddedPrefix:restaurant_"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod   int             `gorm:"type:smallint"`
	DeliveryAddress string
	Status          int        `gorm:"type:smallint"`
	CourierID       *uuid.UUID `gorm:"type:uuid"`
	CourierName     *string
	CourierPhone    *string
	CouponCode      *string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CartLines       []CartLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// RestaurantDTO is the embedded restaurant snapshot.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid"`
	Name    string
	Address string
}

// CartLineDTO maps order_cart_lines. Position keeps the cart order.
type CartLineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
}

func (CartLineDTO) TableName() string {
	return "order_cart_lines"
}

// StatusHistoryDTO maps order_status_history.
type StatusHistoryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid"`
	FromStatus int       `gorm:"type:smallint"`
	ToStatus   int       `gorm:"type:smallint"`
	ActorID    uuid.UUID `gorm:"type:uuid"`
	ChangedAt  time.Time
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         o.ID().Bytes(),
		Number:     o.Number(),
		CustomerID: o.CustomerID().Bytes(),
		Restaurant: RestaurantDTO{
			ID:      o.Restaurant().ID().Bytes(),
			Name:    o.Restaurant().Name(),
			Address: o.Restaurant().Address(),
		},
		Subtotal:        o.Subtotal().Decimal(),
		DeliveryFee:     o.DeliveryFee().Decimal(),
		Discount:        o.Discount().Decimal(),
		TotalAmount:     o.TotalAmount().Decimal(),
		PaymentMethod:   int(o.PaymentMethod()),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          int(o.Status()),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}

	if c := o.Courier(); c != nil {
		id, name, phone := c.ID().Bytes(), c.Name(), c.Phone()
		dto.CourierID, dto.CourierName, dto.CourierPhone = &id, &name, &phone
	}
	if code := o.CouponCode(); code != "" {
		dto.CouponCode = &code
	}

	lines := o.CartLines()
	dto.CartLines = make([]CartLineDTO, 0, len(lines))
	for i, l := range lines {
		dto.CartLines = append(dto.CartLines, CartLineDTO{
			OrderID:   dto.ID,
			Position:  i,
			ItemID:    l.ItemID(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice().Decimal(),
			Quantity:  l.Quantity(),
		})
	}

	return dto
}

func historyFromDomain(orderID uuid.UUID, changes []order.StatusChange) []StatusHistoryDTO {
	out := make([]StatusHistoryDTO, 0, len(changes))
	for _, c := range changes {
		out = append(out, StatusHistoryDTO{
			OrderID:    orderID,
			FromStatus: int(c.From),
			ToStatus:   int(c.To),
			ActorID:    c.ActorID.Bytes(),
			ChangedAt:  c.ChangedAt,
		})
	}
	return out
}

// toDomain rebuilds the aggregate with RestoreOrder, which re-checks the
// courier/status invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.Restaurant.ID[:])
	if err != nil {
		return nil, err
	}
	restaurant, err := order.NewRestaurant(restaurantID, dto.Restaurant.Name, dto.Restaurant.Address)
	if err != nil {
		return nil, err
	}

	lines := make([]order.CartLine, 0, len(dto.CartLines))
	for _, l := range dto.CartLines {
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewCartLine(l.ItemID, l.Name, price, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var courier *order.Courier
	if dto.CourierID != nil {
		courierID, idErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if idErr != nil {
			return nil, idErr
		}
		c, courierErr := order.NewCourier(courierID, deref(dto.CourierName), deref(dto.CourierPhone))
		if courierErr != nil {
			return nil, courierErr
		}
		courier = &c
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		Number:          dto.Number,
		CustomerID:      customerID,
		Restaurant:      restaurant,
		CartLines:       lines,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Discount:        discount,
		PaymentMethod:   order.PaymentMethod(dto.PaymentMethod),
		DeliveryAddress: dto.DeliveryAddress,
		Status:          order.Status(dto.Status),
		Courier:         courier,
		CouponCode:      deref(dto.CouponCode),
		Version:         dto.Version,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
