package queries_test

import (
	"context"
	"testing"
	"time"

	"fastereats/internal/adapters/out/postgres/couponrepo"
	"fastereats/internal/adapters/out/postgres/driverrepo"
	"fastereats/internal/adapters/out/postgres/orderrepo"
	"fastereats/internal/adapters/out/postgres/pgtest"
	"fastereats/internal/core/application/usecases/queries"
	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/ddd"
	"fastereats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, ddd.AggregateRoot) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	orderRepo  *orderrepo.GormOrderRepository
	couponRepo *couponrepo.GormCouponRepository
	restaurant order.Restaurant
	customerID kernel.UUID
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.couponRepo = couponrepo.NewGormCouponRepository(db, noopTracker{})
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	restaurant, err := order.NewRestaurant(kernel.NewUUID(), "Taco Stand", "12 Market St")
	suite.Require().NoError(err)
	suite.restaurant = restaurant
	suite.customerID = kernel.NewUUID()
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsFullView() {
	ctx := suite.T().Context()
	o := suite.place("ORD_20250101_001", suite.customerID)
	courier := suite.deliver(o, order.InTransit)

	query, err := queries.NewGetOrderQuery(o.Number())
	suite.Require().NoError(err)
	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("ORD_20250101_001", view.OrderID)
	suite.Equal(suite.customerID, view.CustomerID)
	suite.Equal("Taco Stand", view.Restaurant.Name)
	suite.Equal("InTransit", view.Status)
	suite.Equal("Cash", view.PaymentMethod)
	suite.Equal("800.00", view.Subtotal.StringFixed(2))
	suite.Equal("800.00", view.TotalAmount.StringFixed(2))
	suite.Require().Len(view.CartLines, 1)
	suite.Equal("al-pastor", view.CartLines[0].ItemID)
	suite.Equal(2, view.CartLines[0].Quantity)
	suite.Require().NotNil(view.Courier)
	suite.Equal(courier.ID(), view.Courier.ID)
	suite.Nil(view.CouponCode)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_Unknown() {
	query, err := queries.NewGetOrderQuery("ORD_19990101_001")
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestListOrders_FiltersNewestFirst() {
	ctx := suite.T().Context()
	first := suite.place("ORD_20250101_001", suite.customerID)
	second := suite.place("ORD_20250101_002", suite.customerID)
	suite.place("ORD_20250101_003", kernel.NewUUID())

	query, err := queries.NewListOrdersQuery(&suite.customerID, nil)
	suite.Require().NoError(err)
	views, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(second.Number(), views[0].OrderID)
	suite.Equal(first.Number(), views[1].OrderID)
	suite.Len(views[0].CartLines, 1)

	restaurantID := suite.restaurant.ID()
	query, err = queries.NewListOrdersQuery(nil, &restaurantID)
	suite.Require().NoError(err)
	views, err = queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(views, 3)

	stranger := kernel.NewUUID()
	query, err = queries.NewListOrdersQuery(&stranger, &restaurantID)
	suite.Require().NoError(err)
	views, err = queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(views)
}

func (suite *QueryHandlersTestSuite) TestListOrderHistory_InOrder() {
	ctx := suite.T().Context()
	o := suite.place("ORD_20250101_001", suite.customerID)
	courier := suite.deliver(o, order.Delivered)

	query, err := queries.NewListOrderHistoryQuery(o.Number())
	suite.Require().NoError(err)
	history, err := queries.NewListOrderHistoryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(history, 6)
	suite.Empty(history[0].From)
	suite.Equal("Placed", history[0].To)
	suite.Equal(suite.customerID, history[0].ActorID)
	suite.Equal("Placed", history[1].From)
	suite.Equal("Accepted", history[1].To)
	suite.Equal(suite.restaurant.ID(), history[1].ActorID)
	suite.Equal("Delivered", history[5].To)
	suite.Equal(courier.ID(), history[5].ActorID)
}

func (suite *QueryHandlersTestSuite) TestListOrderHistory_Unknown() {
	query, err := queries.NewListOrderHistoryQuery("ORD_19990101_001")
	suite.Require().NoError(err)

	_, err = queries.NewListOrderHistoryQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestListOpenJobs_PagesThroughAcceptedOrders() {
	ctx := suite.T().Context()
	handler := queries.NewListOpenJobsQueryHandler(suite.db)

	var accepted []string
	for _, number := range []string{"ORD_20250101_001", "ORD_20250101_002", "ORD_20250101_003", "ORD_20250101_004", "ORD_20250101_005"} {
		o := suite.place(number, suite.customerID)
		suite.Require().NoError(o.Decide(suite.restaurant.ID(), order.DecisionAccept))
		suite.Require().NoError(suite.orderRepo.Update(ctx, o))
		accepted = append(accepted, number)
	}
	suite.place("ORD_20250101_006", suite.customerID)

	var (
		seen  []string
		after *queries.Cursor
		pages int
	)
	for {
		query, err := queries.NewListOpenJobsQuery(after, 2)
		suite.Require().NoError(err)
		page, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)
		pages++
		for _, job := range page.Jobs {
			seen = append(seen, job.OrderID)
			suite.Equal("Taco Stand", job.RestaurantName)
		}
		if page.Next == nil {
			break
		}
		token := page.Next.Encode()
		decoded, err := queries.DecodeCursor(token)
		suite.Require().NoError(err)
		after = &decoded
	}

	suite.Equal(accepted, seen)
	suite.Equal(3, pages)
}

func (suite *QueryHandlersTestSuite) TestListOpenJobs_ClaimedJobLeavesThePool() {
	ctx := suite.T().Context()
	o := suite.place("ORD_20250101_001", suite.customerID)
	suite.deliver(o, order.AssignedToCourier)

	query, err := queries.NewListOpenJobsQuery(nil, 0)
	suite.Require().NoError(err)
	page, err := queries.NewListOpenJobsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(page.Jobs)
	suite.Nil(page.Next)
}

func (suite *QueryHandlersTestSuite) TestListCoupons_NewestFirstWithRedemption() {
	ctx := suite.T().Context()
	amount, err := kernel.MoneyFromInt(500)
	suite.Require().NoError(err)

	older, err := coupon.NewCoupon(coupon.GenerateCode(), amount, time.Hour, time.Now().Add(-time.Minute), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.couponRepo.Add(ctx, older))
	newer, err := coupon.NewCoupon(coupon.GenerateCode(), amount, time.Hour, time.Now(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.couponRepo.Add(ctx, newer))

	orderID := kernel.NewUUID()
	suite.Require().NoError(older.Redeem(orderID, time.Now()))
	suite.Require().NoError(suite.couponRepo.Redeem(ctx, older))

	views, err := queries.NewListCouponsQueryHandler(suite.db).Handle(ctx, queries.NewListCouponsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(newer.Code(), views[0].Code)
	suite.True(views[0].Valid)
	suite.Nil(views[0].RedeemedOrderID)
	suite.Equal(older.Code(), views[1].Code)
	suite.False(views[1].Valid)
	suite.Require().NotNil(views[1].RedeemedOrderID)
	suite.Equal(orderID.Bytes(), *views[1].RedeemedOrderID)
	suite.Equal("500.00", views[1].DiscountAmount.StringFixed(2))
}

func (suite *QueryHandlersTestSuite) TestDrivers_ListedByNameWithMaskedAccount() {
	ctx := suite.T().Context()
	repo := driverrepo.NewGormDriverRepository(suite.db)
	bank, err := driver.NewBankDetails("Sampath Bank", "9876543210")
	suite.Require().NoError(err)

	register := func(name, license string) *driver.Driver {
		d, dErr := driver.NewDriver(kernel.NewUUID(), driver.Profile{
			Name:          name,
			Phone:         "+15550142",
			LicenseNumber: license,
			LicenseExpiry: time.Now().AddDate(1, 0, 0),
			VehicleType:   "bicycle",
			Bank:          bank,
		}, time.Now())
		suite.Require().NoError(dErr)
		suite.Require().NoError(repo.Add(ctx, d))
		return d
	}
	zoe := register("Zoe", "Z0000001")
	ana := register("Ana", "A0000001")

	views, err := queries.NewListDriversQueryHandler(suite.db).Handle(ctx, queries.NewListDriversQuery())
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(ana.ID().Bytes(), views[0].ID)
	suite.Equal(zoe.ID().Bytes(), views[1].ID)
	suite.Equal("******3210", views[0].MaskedAccountNumber)
	suite.Equal("Sampath Bank", views[0].BankName)

	query, err := queries.NewGetDriverQuery(zoe.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetDriverQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Z0000001", view.LicenseNumber)

	query, err = queries.NewGetDriverQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetDriverQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) place(number string, customerID kernel.UUID) *order.Order {
	price, err := kernel.MoneyFromInt(400)
	suite.Require().NoError(err)
	line, err := order.NewCartLine("al-pastor", "Al Pastor", price, 2)
	suite.Require().NoError(err)
	fee, err := kernel.MoneyFromInt(0)
	suite.Require().NoError(err)

	o, err := order.NewOrder(number, customerID, suite.restaurant, []order.CartLine{line}, fee, order.Cash, "7 Bay Rd")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(suite.T().Context(), o))
	return o
}

// deliver walks a Placed order forward until it reaches target.
func (suite *QueryHandlersTestSuite) deliver(o *order.Order, target order.Status) order.Courier {
	ctx := suite.T().Context()
	courier, err := order.NewCourier(kernel.NewUUID(), "Ana", "+15550199")
	suite.Require().NoError(err)

	suite.Require().NoError(o.Decide(suite.restaurant.ID(), order.DecisionAccept))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))
	suite.Require().NoError(o.AssignCourier(courier))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	for _, next := range []order.Status{order.PickedUp, order.InTransit, order.Delivered} {
		if o.Status() == target {
			break
		}
		suite.Require().NoError(o.Advance(courier.ID(), next))
		suite.Require().NoError(suite.orderRepo.Update(ctx, o))
	}
	return courier
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
