package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	httpadapter "pickup/internal/adapters/in/http"
	"pickup/internal/adapters/out/clock"
	"pickup/internal/adapters/out/kafka"
	"pickup/internal/adapters/out/postgres"
	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/ports"
	"pickup/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.SystemClock
	publisher  ports.OrderEventPublisher
	scheduler  *jobs.ExpiryScheduler

	closers []func() error
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	systemClock, err := clock.LoadSystemClock(config.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", config.TimeZone, err)
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemClock,
	}

	if config.KafkaHost != "" {
		publisher := kafka.NewOrderResolvedPublisher(strings.Split(config.KafkaHost, ","), config.KafkaOrderResolvedTopic)
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
	} else {
		c.publisher = kafka.NewLoggingPublisher(logger)
	}

	c.scheduler = jobs.NewExpiryScheduler(c.CreateResolveOrderCommandHandler(), c.clock, logger)
	return c, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.scheduler, c.clock)
}

func (c *CompositionRoot) CreateResolveOrderCommandHandler() commands.ResolveOrderCommandHandler {
	var f commands.ResolveOrderUoWFactory = FuncResolveOrderUoWFactory(func() commands.ResolveOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveOrderCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRearmExpiriesCommandHandler() commands.RearmExpiriesCommandHandler {
	return commands.NewRearmExpiriesCommandHandler(c.orderCatalogUoWFactory(), c.scheduler, c.clock)
}

func (c *CompositionRoot) CreateExpireOverdueOrdersCommandHandler() commands.ExpireOverdueOrdersCommandHandler {
	return commands.NewExpireOverdueOrdersCommandHandler(
		c.orderCatalogUoWFactory(),
		c.CreateResolveOrderCommandHandler(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweep := jobs.NewOverdueSweepJob(c.CreateExpireOverdueOrdersCommandHandler(), c.config.OverdueSweepCron, c.logger)
	return jobs.NewJobManager(sweep, c.scheduler)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpadapter.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateResolveOrderCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.logger,
	)
	return httpadapter.NewRouter(server, []byte(c.config.JWTSecret), c.logger)
}

// RearmExpiries schedules a timer for every order that was active when the
// process stopped.
func (c *CompositionRoot) RearmExpiries(ctx context.Context) (int, error) {
	return c.CreateRearmExpiriesCommandHandler().Handle(ctx, commands.NewRearmExpiriesCommand())
}

// Close releases the outbound connections opened by the root.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) orderCatalogUoWFactory() commands.OrderCatalogUoWFactory {
	return FuncOrderCatalogUoWFactory(func() commands.OrderCatalogUoW {
		return c.uowFactory.Create()
	})
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncResolveOrderUoWFactory func() commands.ResolveOrderUoW

func (f FuncResolveOrderUoWFactory) Create() commands.ResolveOrderUoW {
	return f()
}

type FuncOrderCatalogUoWFactory func() commands.OrderCatalogUoW

func (f FuncOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	return f()
}
