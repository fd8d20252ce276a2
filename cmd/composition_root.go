package cmd

import (
	"log/slog"

	"printz/internal/adapters/out/postgres"
	"printz/internal/adapters/out/smtpnotify"
	"printz/internal/core/application/usecases/commands"
	"printz/internal/core/application/usecases/queries"
	"printz/internal/core/ports"
	"printz/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are
// created per request from here; the factory and notifier are shared.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration and an
// open database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	notifier := smtpnotify.NewSMTPNotifier(smtpnotify.Config{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
	}, logger)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.notifier, c.config.LinkBaseURL, c.logger)
}

func (c *CompositionRoot) CreateSetShopPricesCommandHandler() commands.SetShopPricesCommandHandler {
	var f commands.ShopUoWFactory = FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetShopPricesCommandHandler(f)
}

func (c *CompositionRoot) CreateSetShopActivityCommandHandler() commands.SetShopActivityCommandHandler {
	var f commands.ShopUoWFactory = FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetShopActivityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetStudentOrdersQueryHandler() queries.GetStudentOrdersQueryHandler {
	return queries.NewGetStudentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopOrdersQueryHandler() queries.GetShopOrdersQueryHandler {
	return queries.NewGetShopOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopsQueryHandler() queries.GetShopsQueryHandler {
	return queries.NewGetShopsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopPricesQueryHandler() queries.GetShopPricesQueryHandler {
	return queries.NewGetShopPricesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopActivityQueryHandler() queries.GetShopActivityQueryHandler {
	return queries.NewGetShopActivityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopInsightsQueryHandler() queries.GetShopInsightsQueryHandler {
	return queries.NewGetShopInsightsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetStaleOrdersQueryHandler(c.gormDB),
		c.config.StaleOrderAge,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}
