package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alexanderramin/timeledger/internal/api"
	"github.com/alexanderramin/timeledger/internal/cli"
	"github.com/alexanderramin/timeledger/internal/config"
	"github.com/alexanderramin/timeledger/internal/db"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/alexanderramin/timeledger/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	eventRepo := repository.NewSQLiteClockEventRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	employeeSvc := service.NewEmployeeService(employeeRepo)
	clockSvc := service.NewClockService(eventRepo, employeeRepo, observers...)
	statsSvc := service.NewStatsService(employeeRepo, eventRepo, taskRepo, assignmentRepo, cfg.EventLimit, observers...)

	app := &cli.App{
		Employees:  employeeSvc,
		Clock:      clockSvc,
		Tasks:      service.NewTaskService(taskRepo, assignmentRepo, uow),
		Stats:      statsSvc,
		Import:     service.NewImportService(uow, observers...),
		Currency:   cfg.Currency,
		EventLimit: cfg.EventLimit,
		HTTPAddr:   cfg.HTTPAddr,
	}

	app.Handler = func() http.Handler {
		srv := api.NewServer(api.Services{
			Employees: employeeSvc,
			Clock:     clockSvc,
			Stats:     statsSvc,
		}, logger, cfg.EventLimit)
		return srv.Routes()
	}

	// Interactive pickers and the panel need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
