package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpin "fastereats/internal/adapters/in/http"
	"fastereats/internal/adapters/out/directory"
	"fastereats/internal/adapters/out/invoice"
	"fastereats/internal/adapters/out/notification"
	"fastereats/internal/adapters/out/postgres"
	"fastereats/internal/core/application/eventhandlers"
	"fastereats/internal/core/application/usecases/commands"
	"fastereats/internal/core/application/usecases/queries"
	"fastereats/internal/core/domain/model/coupon"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/domain/services"
	"fastereats/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricer     services.OrderPricer
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	pricer, err := newOrderPricer(configs)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("pricing rules: %w", err)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricer:     pricer,
		logger:     logger,
	}, nil
}

func newOrderPricer(configs Config) (services.OrderPricer, error) {
	fee, err := kernel.NewMoney(configs.DeliveryFee)
	if err != nil {
		return services.OrderPricer{}, err
	}
	threshold, err := kernel.NewMoney(configs.CouponThreshold)
	if err != nil {
		return services.OrderPricer{}, err
	}
	discount, err := kernel.NewMoney(configs.CouponDiscount)
	if err != nil {
		return services.OrderPricer{}, err
	}
	return services.NewOrderPricer(fee, threshold, discount, configs.CouponTTL)
}

// Commands

func (c *CompositionRoot) CreateMintCouponCommandHandler() commands.MintCouponCommandHandler {
	var f commands.CouponUoWFactory = FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMintCouponCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.CreateMintCouponCommandHandler(), c.pricer, c.logger)
}

func (c *CompositionRoot) CreateDecideOrderCommandHandler() commands.DecideOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDecideOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyCouponCommandHandler() commands.ApplyCouponCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyCouponCommandHandler(f, c.pricer)
}

func (c *CompositionRoot) CreateClaimJobCommandHandler() commands.ClaimJobCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimJobCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCouponCommandHandler() commands.DeleteCouponCommandHandler {
	var f commands.CouponUoWFactory = FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCouponCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeExpiredCouponsCommandHandler() commands.PurgeExpiredCouponsCommandHandler {
	var f commands.CouponUoWFactory = FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredCouponsCommandHandler(f)
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateProcessOutboxCommandHandler() (commands.ProcessOutboxCommandHandler, error) {
	dispatcher, err := c.CreateEventDispatcher()
	if err != nil {
		return commands.ProcessOutboxCommandHandler{}, err
	}

	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOutboxCommandHandler(f, dispatcher, c.logger), nil
}

// Queries

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrderHistoryQueryHandler() queries.ListOrderHistoryQueryHandler {
	return queries.NewListOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOpenJobsQueryHandler() queries.ListOpenJobsQueryHandler {
	return queries.NewListOpenJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCouponsQueryHandler() queries.ListCouponsQueryHandler {
	return queries.NewListCouponsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

// Outbound collaborators and event handlers

func (c *CompositionRoot) CreateEventDispatcher() (*eventhandlers.Dispatcher, error) {
	renderer, err := invoice.NewHTMLRenderer(c.configs.InvoiceCurrency)
	if err != nil {
		return nil, fmt.Errorf("invoice renderer: %w", err)
	}

	users := directory.NewClient(c.configs.AuthServiceURL, directory.Options{
		Timeout:      c.configs.OutboundTimeout,
		RetryMax:     c.configs.DirectoryRetryMax,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
	}, c.logger)
	notifier := notification.NewClient(c.configs.NotificationServiceURL, c.configs.OutboundTimeout)

	// Both read outside a transaction; safe to share between relay runs.
	orders := c.uowFactory.Create().OrderRepository()
	deliveries := c.uowFactory.Create().OutboxRepository()

	placed := eventhandlers.NewOrderPlacedHandler(orders, users, renderer, notifier, c.logger)
	dispatcher := eventhandlers.NewDispatcher(deliveries, c.logger).
		Register(order.PlacedEventName, "invoice-email", eventhandlers.HandlerFunc(placed.SendInvoice)).
		Register(order.PlacedEventName, "placed-sms", eventhandlers.HandlerFunc(placed.SendConfirmation)).
		Register(order.StatusChangedEventName, "status-sms",
			eventhandlers.NewOrderStatusChangedHandler(users, notifier, c.logger)).
		Register(coupon.MintedEventName, "coupon-email", eventhandlers.NewCouponMintedHandler(users, notifier, c.logger))
	return dispatcher, nil
}

// Jobs and HTTP

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relay, err := c.CreateProcessOutboxCommandHandler()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(relay, c.CreatePurgeExpiredCouponsCommandHandler(), jobs.Settings{
		OutboxBatchSize:   c.configs.OutboxBatchSize,
		OutboxMaxAttempts: c.configs.OutboxMaxAttempts,
		OutboxLease:       c.configs.OutboxLease,
		CouponRetention:   c.configs.CouponRetention,
	}, c.logger), nil
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	placeOrder := c.CreatePlaceOrderCommandHandler()
	decideOrder := c.CreateDecideOrderCommandHandler()
	applyCoupon := c.CreateApplyCouponCommandHandler()
	claimJob := c.CreateClaimJobCommandHandler()
	advanceDelivery := c.CreateAdvanceDeliveryCommandHandler()
	deleteCoupon := c.CreateDeleteCouponCommandHandler()
	registerDriver := c.CreateRegisterDriverCommandHandler()
	updateDriver := c.CreateUpdateDriverCommandHandler()
	deleteDriver := c.CreateDeleteDriverCommandHandler()

	return httpin.NewServer(
		httpin.CommandHandlers{
			PlaceOrder:      &placeOrder,
			DecideOrder:     &decideOrder,
			ApplyCoupon:     &applyCoupon,
			ClaimJob:        &claimJob,
			AdvanceDelivery: &advanceDelivery,
			DeleteCoupon:    &deleteCoupon,
			RegisterDriver:  &registerDriver,
			UpdateDriver:    &updateDriver,
			DeleteDriver:    &deleteDriver,
		},
		httpin.QueryHandlers{
			GetOrder:         c.CreateGetOrderQueryHandler(),
			ListOrders:       c.CreateListOrdersQueryHandler(),
			ListOrderHistory: c.CreateListOrderHistoryQueryHandler(),
			ListOpenJobs:     c.CreateListOpenJobsQueryHandler(),
			ListCoupons:      c.CreateListCouponsQueryHandler(),
			GetDriver:        c.CreateGetDriverQueryHandler(),
			ListDrivers:      c.CreateListDriversQueryHandler(),
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCouponUoWFactory func() commands.CouponUoW

func (f FuncCouponUoWFactory) Create() commands.CouponUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}
