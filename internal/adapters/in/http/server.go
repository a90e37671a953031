package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fastereats/internal/core/application/usecases/commands"
	"fastereats/internal/core/application/usecases/queries"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/generated/servers"
	"fastereats/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Use case ports as seen by the HTTP layer.
type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderCommandResponse, error)
	}
	DecideOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DecideOrderCommand) error
	}
	ApplyCouponHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyCouponCommand) (commands.ApplyCouponCommandResponse, error)
	}
	ClaimJobHandler interface {
		Handle(ctx context.Context, cmd commands.ClaimJobCommand) error
	}
	AdvanceDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceDeliveryCommand) error
	}
	DeleteCouponHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteCouponCommand) error
	}
	RegisterDriverHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterDriverCommand) (kernel.UUID, error)
	}
	UpdateDriverHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateDriverCommand) error
	}
	DeleteDriverHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteDriverCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
	ListOrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.ListOrderHistoryQuery) ([]queries.StatusChangeView, error)
	}
	ListOpenJobsHandler interface {
		Handle(ctx context.Context, query queries.ListOpenJobsQuery) (queries.ListOpenJobsQueryResponse, error)
	}
	ListCouponsHandler interface {
		Handle(ctx context.Context, query queries.ListCouponsQuery) ([]queries.CouponView, error)
	}
	GetDriverHandler interface {
		Handle(ctx context.Context, query queries.GetDriverQuery) (queries.DriverView, error)
	}
	ListDriversHandler interface {
		Handle(ctx context.Context, query queries.ListDriversQuery) ([]queries.DriverView, error)
	}
)

// CommandHandlers groups the write side.
type CommandHandlers struct {
	PlaceOrder      PlaceOrderHandler
	DecideOrder     DecideOrderHandler
	ApplyCoupon     ApplyCouponHandler
	ClaimJob        ClaimJobHandler
	AdvanceDelivery AdvanceDeliveryHandler
	DeleteCoupon    DeleteCouponHandler
	RegisterDriver  RegisterDriverHandler
	UpdateDriver    UpdateDriverHandler
	DeleteDriver    DeleteDriverHandler
}

// QueryHandlers groups the read side.
type QueryHandlers struct {
	GetOrder         GetOrderHandler
	ListOrders       ListOrdersHandler
	ListOrderHistory ListOrderHistoryHandler
	ListOpenJobs     ListOpenJobsHandler
	ListCoupons      ListCouponsHandler
	GetDriver        GetDriverHandler
	ListDrivers      ListDriversHandler
}

// Server implements servers.ServerInterface. Every write answers with the
// order or driver as re-read after commit.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(cmds CommandHandlers, qs QueryHandlers, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		logger:   logger.With("component", "http-server"),
	}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req servers.PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := placeOrderCommandFrom(req)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	resp, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	view, err := s.readOrder(ctx.Request().Context(), resp.Number)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	body := servers.PlaceOrderResponse{Order: toOrder(view)}
	if resp.Coupon != nil {
		body.Coupon = &servers.Coupon{
			Code:           resp.Coupon.Code,
			DiscountAmount: resp.Coupon.DiscountAmount.String(),
			ExpiresAt:      resp.Coupon.ExpiresAt,
		}
	}
	return ctx.JSON(http.StatusCreated, body)
}

func placeOrderCommandFrom(req servers.PlaceOrderRequest) (commands.PlaceOrderCommand, error) {
	customerID, err := uuidParam("customerId", req.CustomerId)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	restaurantID, err := uuidParam("restaurantId", req.Restaurant.RestaurantId)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	restaurant, err := order.NewRestaurant(restaurantID, req.Restaurant.RestaurantName, req.Restaurant.RestaurantAddress)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	lines := make([]order.CartLine, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		price, err := kernel.MoneyFromString(item.Price)
		if err != nil {
			return commands.PlaceOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("price", err)
		}
		line, err := order.NewCartLine(item.ItemId, item.Name, price, item.Quantity)
		if err != nil {
			return commands.PlaceOrderCommand{}, err
		}
		lines = append(lines, line)
	}

	method, err := order.ParsePaymentMethod(string(req.PaymentMethod))
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	return commands.NewPlaceOrderCommand(customerID, restaurant, lines, method, req.DeliveryAddress)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var customerID, restaurantID *kernel.UUID
	if params.CustomerId != nil {
		id, err := uuidParam("customerId", *params.CustomerId)
		if err != nil {
			return respondError(ctx, s.logger, err)
		}
		customerID = &id
	}
	if params.RestaurantId != nil {
		id, err := uuidParam("restaurantId", *params.RestaurantId)
		if err != nil {
			return respondError(ctx, s.logger, err)
		}
		restaurantID = &id
	}

	query, err := queries.NewListOrdersQuery(customerID, restaurantID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	views, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	view, err := s.readOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewListOrderHistoryQuery(orderID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	changes, err := s.queries.ListOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := make([]servers.StatusChange, len(changes))
	for i, c := range changes {
		response[i] = toStatusChange(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// DecideOrder handles PATCH /api/v1/orders/{orderId}/decision.
func (s *Server) DecideOrder(ctx echo.Context, orderID servers.OrderId) error {
	var req servers.DecisionRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := uuidParam("restaurantId", req.RestaurantId)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	decision, err := order.ParseDecision(string(req.Decision))
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewDecideOrderCommand(orderID, restaurantID, decision)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err = s.commands.DecideOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return s.GetOrder(ctx, orderID)
}

// ApplyCoupon handles POST /api/v1/orders/{orderId}/coupon.
func (s *Server) ApplyCoupon(ctx echo.Context, orderID servers.OrderId) error {
	var req servers.ApplyCouponRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyCouponCommand(orderID, req.CouponCode)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	resp, err := s.commands.ApplyCoupon.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	view, err := s.readOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, servers.ApplyCouponResponse{
		Discount:    resp.Discount.String(),
		TotalAmount: resp.TotalAmount.String(),
		Order:       toOrder(view),
	})
}

// ListOpenJobs handles GET /api/v1/delivery/open-jobs.
func (s *Server) ListOpenJobs(ctx echo.Context, params servers.ListOpenJobsParams) error {
	var after *queries.Cursor
	if params.After != nil && *params.After != "" {
		c, err := queries.DecodeCursor(*params.After)
		if err != nil {
			return respondError(ctx, s.logger, err)
		}
		after = &c
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOpenJobsQuery(after, limit)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	page, err := s.queries.ListOpenJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := servers.OpenJobsPage{Jobs: make([]servers.OpenJob, len(page.Jobs))}
	for i, j := range page.Jobs {
		response.Jobs[i] = toOpenJob(j)
	}
	if page.Next != nil {
		next := page.Next.Encode()
		response.Next = &next
	}
	return ctx.JSON(http.StatusOK, response)
}

// ClaimJob handles POST /api/v1/delivery/claim. Of several couriers racing for
// the same order exactly one gets 200, the rest get 409. The courier must be a
// registered driver: an unknown id is 404 and an expired licence is 400.
func (s *Server) ClaimJob(ctx echo.Context) error {
	var req servers.ClaimJobRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	courierID, err := uuidParam("courierId", req.CourierId)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewClaimJobCommand(req.OrderId, courierID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err = s.commands.ClaimJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return s.GetOrder(ctx, req.OrderId)
}

// AdvanceDelivery handles PATCH /api/v1/delivery/{orderId}/advance.
func (s *Server) AdvanceDelivery(ctx echo.Context, orderID servers.OrderId) error {
	var req servers.AdvanceDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	courierID, err := uuidParam("courierId", req.CourierId)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	next, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(orderID, courierID, next)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err = s.commands.AdvanceDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return s.GetOrder(ctx, orderID)
}

// ListCoupons handles GET /api/v1/coupons.
func (s *Server) ListCoupons(ctx echo.Context) error {
	views, err := s.queries.ListCoupons.Handle(ctx.Request().Context(), queries.NewListCouponsQuery())
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := make([]servers.CouponDetails, len(views))
	for i, v := range views {
		response[i] = toCouponDetails(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteCoupon handles DELETE /api/v1/coupons/{code}.
func (s *Server) DeleteCoupon(ctx echo.Context, code string) error {
	cmd, err := commands.NewDeleteCouponCommand(code)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err = s.commands.DeleteCoupon.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) readOrder(ctx context.Context, number string) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.queries.GetOrder.Handle(ctx, query)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func uuidParam(name string, id uuid.UUID) (kernel.UUID, error) {
	if id == uuid.Nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	k, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errors.Join(errs.NewValueIsInvalidError(name), err)
	}
	return k, nil
}
