package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/rbandrews2/crewclock/internal/cli"
	"github.com/rbandrews2/crewclock/internal/config"
	"github.com/rbandrews2/crewclock/internal/db"
	"github.com/rbandrews2/crewclock/internal/repository"
	"github.com/rbandrews2/crewclock/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CREWCLOCK_CONFIG"))
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	jobRepo := repository.NewSQLiteJobRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Clock:      service.NewClockService(jobRepo, taskRepo, entryRepo, uow),
		Catalog:    service.NewCatalogService(jobRepo, taskRepo, cfg.Admin),
		Timesheets: service.NewTimesheetService(entryRepo),

		UserID:    cfg.UserID,
		Email:     cfg.Email,
		ExportDir: cfg.ExportDir,
		Now:       time.Now,
		Loc:       time.Local,
	}

	// Detect interactive terminal for forms and the watch view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
