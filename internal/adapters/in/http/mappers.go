package http

import (
	"fastereats/internal/core/application/usecases/queries"
	"fastereats/internal/generated/servers"
)

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.CartItem, 0, len(v.CartLines))
	for _, l := range v.CartLines {
		items = append(items, servers.CartItem{
			ItemId:   l.ItemID,
			Name:     l.Name,
			Price:    l.UnitPrice.StringFixed(2),
			Quantity: l.Quantity,
		})
	}

	o := servers.Order{
		OrderId:    v.OrderID,
		CustomerId: v.CustomerID.Bytes(),
		Restaurant: servers.Restaurant{
			RestaurantId:      v.Restaurant.ID.Bytes(),
			RestaurantName:    v.Restaurant.Name,
			RestaurantAddress: v.Restaurant.Address,
		},
		CartItems:       items,
		Subtotal:        v.Subtotal.StringFixed(2),
		DeliveryFee:     v.DeliveryFee.StringFixed(2),
		Discount:        v.Discount.StringFixed(2),
		TotalAmount:     v.TotalAmount.StringFixed(2),
		PaymentMethod:   servers.PaymentMethod(v.PaymentMethod),
		DeliveryAddress: v.DeliveryAddress,
		Status:          servers.OrderStatus(v.Status),
		CouponCode:      v.CouponCode,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.Courier != nil {
		o.Courier = &servers.Courier{
			CourierId: v.Courier.ID.Bytes(),
			Name:      v.Courier.Name,
			Phone:     v.Courier.Phone,
		}
	}
	return o
}

func toStatusChange(v queries.StatusChangeView) servers.StatusChange {
	change := servers.StatusChange{
		ActorId:   v.ActorID.Bytes(),
		ChangedAt: v.ChangedAt,
		To:        servers.OrderStatus(v.To),
	}
	if v.From != "" {
		from := servers.OrderStatus(v.From)
		change.From = &from
	}
	return change
}

func toOpenJob(v queries.OpenJobView) servers.OpenJob {
	return servers.OpenJob{
		OrderId:           v.OrderID,
		RestaurantName:    v.RestaurantName,
		RestaurantAddress: v.RestaurantAddress,
		DeliveryAddress:   v.DeliveryAddress,
		TotalAmount:       v.TotalAmount.StringFixed(2),
		PaymentMethod:     servers.PaymentMethod(v.PaymentMethod),
		CreatedAt:         v.CreatedAt,
	}
}

func toCouponDetails(v queries.CouponView) servers.CouponDetails {
	return servers.CouponDetails{
		Code:            v.Code,
		DiscountAmount:  v.DiscountAmount.StringFixed(2),
		Valid:           v.Valid,
		ExpiresAt:       v.ExpiresAt,
		CreatedAt:       v.CreatedAt,
		SourceOrderId:   v.SourceOrderID,
		RedeemedOrderId: v.RedeemedOrderID,
		RedeemedAt:      v.RedeemedAt,
	}
}
