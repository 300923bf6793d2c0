package cmd

import (
	"log/slog"

	"scheduling/internal/adapters/out/dataservice"
	"scheduling/internal/adapters/out/postgres"
	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/core/ports"
	"scheduling/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      *jobs.ChannelJobQueue
	resolver   ports.StaffGroupResolver
	planner    services.Planner
	logger     *slog.Logger

	workerCount int
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	resolver, err := dataservice.NewClient(config.DataServiceURL, config.DataServiceTimeout)
	if err != nil {
		return CompositionRoot{}, err
	}

	rules, err := services.NewRuleSet(
		config.MinDaysOffPerWeek,
		config.MaxDaysOffPerWeek,
		config.MaxDailyShiftDifference,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	planner, err := services.NewPlanner(rules)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:       jobs.NewChannelJobQueue(config.JobQueueCapacity),
		resolver:    resolver,
		planner:     planner,
		logger:      logger,
		workerCount: config.JobWorkerCount,
	}, nil
}

func (c *CompositionRoot) CreateSubmitScheduleCommandHandler() commands.SubmitScheduleCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitScheduleCommandHandler(f, c.queue)
}

func (c *CompositionRoot) CreateProcessScheduleCommandHandler() commands.ProcessScheduleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessScheduleCommandHandler(f, c.resolver, c.planner, c.logger)
}

func (c *CompositionRoot) CreateGetScheduleStatusQueryHandler() queries.GetScheduleStatusQueryHandler {
	return queries.NewGetScheduleStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetScheduleResultQueryHandler() queries.GetScheduleResultQueryHandler {
	return queries.NewGetScheduleResultQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.queue,
		c.CreateProcessScheduleCommandHandler(),
		&c.uowFactory,
		c.workerCount,
		c.logger,
	)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
