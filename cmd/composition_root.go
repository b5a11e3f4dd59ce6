package cmd

import (
	"log/slog"

	httpserver "cargoflow/internal/adapters/in/http"
	"cargoflow/internal/adapters/out/eventlog"
	"cargoflow/internal/adapters/out/postgres"
	"cargoflow/internal/adapters/out/pricing"
	"cargoflow/internal/adapters/out/tracking"
	"cargoflow/internal/core/application/usecases/commands"
	"cargoflow/internal/core/application/usecases/queries"
	"cargoflow/internal/core/ports"
	"cargoflow/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure into the application's handlers.
type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	publisher    ports.EventPublisher
	estimator    pricing.TariffEstimator
	positionFeed *tracking.InMemoryPositionFeed
}

// NewCompositionRoot creates the composition root for the given configuration
// and database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:    eventlog.NewPublisher(logger),
		estimator:    pricing.NewTariffEstimator(),
		positionFeed: tracking.NewInMemoryPositionFeed(),
	}
}

func (c *CompositionRoot) CreateCreateCargoCommandHandler() commands.CreateCargoCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateProposeAssignmentCommandHandler() commands.ProposeAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProposeAssignmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDriverRespondCommandHandler() commands.DriverRespondCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDriverRespondCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelAssignmentCommandHandler() commands.CancelAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelAssignmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateExpireAssignmentsCommandHandler() commands.ExpireAssignmentsCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireAssignmentsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateResolveActionsQueryHandler() queries.ResolveActionsQueryHandler {
	// Action resolution is read-only; the repositories run outside any
	// transaction.
	uow := c.uowFactory.Create()
	return queries.NewResolveActionsQueryHandler(uow.CargoRepository(), uow.AssignmentRepository())
}

func (c *CompositionRoot) CreateGetActiveCargosQueryHandler() queries.GetActiveCargosQueryHandler {
	return queries.NewGetActiveCargosQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentHistoryQueryHandler() queries.GetAssignmentHistoryQueryHandler {
	return queries.NewGetAssignmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryReceiptQueryHandler() queries.GetDeliveryReceiptQueryHandler {
	return queries.NewGetDeliveryReceiptQueryHandler(c.gormDB, c.estimator)
}

func (c *CompositionRoot) CreateGetCargoPositionQueryHandler() queries.GetCargoPositionQueryHandler {
	return queries.NewGetCargoPositionQueryHandler(c.gormDB, c.positionFeed)
}

// CreateHTTPServer builds the fully wired HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(
		c.CreateCreateCargoCommandHandler(),
		c.CreateRequestTransitionCommandHandler(),
		c.CreateProposeAssignmentCommandHandler(),
		c.CreateDriverRespondCommandHandler(),
		c.CreateCancelAssignmentCommandHandler(),
		c.CreateResolveActionsQueryHandler(),
		c.CreateGetActiveCargosQueryHandler(),
		c.CreateGetAssignmentHistoryQueryHandler(),
		c.CreateGetDeliveryReceiptQueryHandler(),
		c.CreateGetCargoPositionQueryHandler(),
		c.positionFeed,
		c.config.AssignmentTTL,
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireAssignmentsCommandHandler(),
		c.config.ExpirySweepSchedule,
		logger,
	)
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
