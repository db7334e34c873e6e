package cmd

import (
	"log/slog"

	httpin "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/clock"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/routing"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	distances  ports.DistanceEstimator
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. A nil rdb disables the distance cache.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, rdb *redis.Client, logger *slog.Logger) CompositionRoot {
	var distances ports.DistanceEstimator = routing.NewGreatCircleEstimator()
	if rdb != nil {
		distances = routing.NewCachedDistanceEstimator(distances, rdb, configs.DistanceCacheTTL, logger)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		distances:  distances,
		clock:      clock.NewNairobiClock(),
		logger:     logger,
	}
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateQuoteCommandHandler() commands.CreateQuoteCommandHandler {
	return commands.NewCreateQuoteCommandHandler(
		c.quoteUoWFactory(),
		c.distances,
		c.clock,
		services.NewPriceCalculator(),
		services.NewTravelTimeEstimator(),
		c.configs.QuoteTTL,
	)
}

func (c *CompositionRoot) CreateBookQuoteCommandHandler() commands.BookQuoteCommandHandler {
	return commands.NewBookQuoteCommandHandler(c.quoteUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpireQuotesCommandHandler() commands.ExpireQuotesCommandHandler {
	return commands.NewExpireQuotesCommandHandler(c.quoteUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleOptionsQueryHandler() queries.GetVehicleOptionsQueryHandler {
	ranker := services.NewVehicleOptionRanker(services.NewPriceCalculator(), services.NewTravelTimeEstimator())
	return queries.NewGetVehicleOptionsQueryHandler(c.clock, ranker)
}

func (c *CompositionRoot) CreateGetVehicleTypesQueryHandler() queries.GetVehicleTypesQueryHandler {
	return queries.NewGetVehicleTypesQueryHandler()
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	createQuote := c.CreateCreateQuoteCommandHandler()
	bookQuote := c.CreateBookQuoteCommandHandler()

	return httpin.NewServer(
		&createQuote,
		&bookQuote,
		c.CreateGetQuoteQueryHandler(),
		c.CreateGetVehicleOptionsQueryHandler(),
		c.CreateGetVehicleTypesQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expireQuotes := c.CreateExpireQuotesCommandHandler()
	return jobs.NewJobManager(&expireQuotes, c.configs.QuoteExpirySchedule, c.logger)
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}
