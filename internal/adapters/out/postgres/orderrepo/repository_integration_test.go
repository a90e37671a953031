package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fastereats/internal/adapters/out/postgres/orderrepo"
	"fastereats/internal/adapters/out/postgres/pgtest"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/ddd"
	"fastereats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker records the aggregates the repository hands over.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate ddd.AggregateRoot) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGetByNumber_RoundTrips() {
	ctx := suite.T().Context()
	o := suite.newOrder("ORD_20250101_001")

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID().String(), o)
	suite.Empty(o.PendingStatusChanges())

	loaded, err := suite.repository.GetByNumber(ctx, "ORD_20250101_001")
	suite.Require().NoError(err)
	suite.True(o.IsEqual(loaded))
	suite.Equal(order.Placed, loaded.Status())
	suite.Equal(1, loaded.Version())
	suite.Equal("2600.00", loaded.TotalAmount().String())
	suite.Equal("50.00", loaded.DeliveryFee().String())
	suite.Require().Len(loaded.CartLines(), 2)
	suite.Equal("margherita", loaded.CartLines()[0].ItemID())
	suite.Equal("tiramisu", loaded.CartLines()[1].ItemID())
	suite.Nil(loaded.Courier())
	suite.Empty(loaded.DomainEvents())

	byID, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(loaded.Number(), byID.Number())

	suite.assertHistory(o, order.Placed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_IsInvalid() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORD_20250101_001")))

	err := suite.repository.Add(ctx, suite.newOrder("ORD_20250101_001"))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	ctx := suite.T().Context()

	_, err := suite.repository.GetByNumber(ctx, "ORD_19990101_001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WalksTheLifecycle() {
	ctx := suite.T().Context()
	o := suite.newOrder("ORD_20250101_001")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	courier, err := order.NewCourier(kernel.NewUUID(), "Sam", "+15550100")
	suite.Require().NoError(err)

	suite.Require().NoError(o.Decide(o.Restaurant().ID(), order.DecisionAccept))
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Require().NoError(o.AssignCourier(courier))
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Require().NoError(o.Advance(courier.ID(), order.PickedUp))
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Equal(4, o.Version())

	loaded, err := suite.repository.GetByNumber(ctx, o.Number())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, loaded.Status())
	suite.Equal(4, loaded.Version())
	suite.Require().NotNil(loaded.Courier())
	suite.Equal(courier.ID(), loaded.Courier().ID())
	suite.Equal("Sam", loaded.Courier().Name())

	suite.assertHistory(o, order.Placed, order.Accepted, order.AssignedToCourier, order.PickedUp)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleCopy_LosesAndWritesNothing() {
	ctx := suite.T().Context()
	o := suite.newOrder("ORD_20250101_001")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.GetByNumber(ctx, o.Number())
	suite.Require().NoError(err)
	second, err := suite.repository.GetByNumber(ctx, o.Number())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Decide(o.Restaurant().ID(), order.DecisionAccept))
	suite.Require().NoError(second.Decide(o.Restaurant().ID(), order.DecisionDecline))

	suite.Require().NoError(suite.repository.Update(ctx, first))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	loaded, err := suite.repository.GetByNumber(ctx, o.Number())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, loaded.Status())
	suite.assertHistory(o, order.Placed, order.Accepted)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppliedDiscount_IsStored() {
	ctx := suite.T().Context()
	o := suite.newOrder("ORD_20250101_001")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	discount, err := kernel.MoneyFromInt(3000)
	suite.Require().NoError(err)
	suite.Require().NoError(o.ApplyDiscount("DISCOUNT-ABCD1234", discount))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.GetByNumber(ctx, o.Number())
	suite.Require().NoError(err)
	suite.Equal("DISCOUNT-ABCD1234", loaded.CouponCode())
	suite.True(loaded.TotalAmount().IsZero())
	suite.Equal(order.Placed, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextNumber_CountsPerDay() {
	ctx := suite.T().Context()
	day := time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)

	for _, want := range []string{"ORD_20250314_001", "ORD_20250314_002", "ORD_20250314_003"} {
		got, err := suite.repository.NextNumber(ctx, day)
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}

	got, err := suite.repository.NextNumber(ctx, day.Add(2*time.Hour))
	suite.Require().NoError(err)
	suite.Equal("ORD_20250315_001", got)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCourierConstraint_RejectsCourierOnOpenOrder() {
	ctx := suite.T().Context()
	o := suite.newOrder("ORD_20250101_001")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.db.WithContext(ctx).Exec(
		"UPDATE orders SET courier_id = ? WHERE id = ?", kernel.NewUUID().Bytes(), o.ID().Bytes(),
	).Error
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(number string) *order.Order {
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), "Pizza Place", "1 Main St")
	suite.Require().NoError(err)

	pizza, err := kernel.MoneyFromString("1200.00")
	suite.Require().NoError(err)
	dessert, err := kernel.MoneyFromString("150")
	suite.Require().NoError(err)
	fee, err := kernel.MoneyFromInt(50)
	suite.Require().NoError(err)

	lines := make([]order.CartLine, 0, 2)
	for _, l := range []struct {
		id, name string
		price    kernel.Money
		qty      int
	}{
		{"margherita", "Margherita", pizza, 2},
		{"tiramisu", "Tiramisu", dessert, 1},
	} {
		line, lineErr := order.NewCartLine(l.id, l.name, l.price, l.qty)
		suite.Require().NoError(lineErr)
		lines = append(lines, line)
	}

	o, err := order.NewOrder(number, kernel.NewUUID(), restaurant, lines, fee, order.Card, "5 Oak Ave")
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertHistory(o *order.Order, want ...order.Status) {
	var rows []orderrepo.StatusHistoryDTO
	suite.Require().NoError(suite.db.Where("order_id = ?", o.ID().Bytes()).Order("id").Find(&rows).Error)

	got := make([]order.Status, 0, len(rows))
	for _, r := range rows {
		got = append(got, order.Status(r.ToStatus))
	}
	suite.Equal(want, got)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
