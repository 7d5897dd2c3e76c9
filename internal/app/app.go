package app

import (
	"context"

	"rewear/config"
	"rewear/internal/controllers"
	"rewear/internal/database"
	"rewear/internal/handlers/middleware"
	"rewear/internal/jobs"
	"rewear/internal/repositories"
	"rewear/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database     database.DB
	Middleware   middleware.Middleware
	Config       config.Config
	Services     services.Service
	Repositories repositories.Repository
	Controllers  controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)

	svcs, err := services.New(db, config)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	ctrls := controllers.New(svcs, repos, config, db)
	middleware := middleware.New(db, config, repos, svcs.Session)

	// Register always so admins can trigger the sweep by hand even when
	// the nightly schedule is disabled
	overdueJob := jobs.NewOverdueRentalJob(svcs.Transaction, repos.Rental, db, services.Daily)
	if err := svcs.Scheduler.AddJob(overdueJob); err != nil {
		return &App{}, log.Err("failed to register overdue rental job", err)
	}

	if config.SchedulerEnabled {
		if err := svcs.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Database:     db,
		Middleware:   middleware,
		Config:       config,
		Services:     svcs,
		Repositories: repos,
		Controllers:  ctrls,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Session,
		a.Services.Scheduler,
		a.Services.Storage,
		a.Repositories.User,
		a.Repositories.Clothing,
		a.Repositories.Rental,
		a.Repositories.Role,
		a.Controllers.Auth,
		a.Controllers.User,
		a.Controllers.Clothing,
		a.Controllers.Rental,
		a.Controllers.Admin,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if a.Services.Storage != nil {
		if closeErr := a.Services.Storage.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
