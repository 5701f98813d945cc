package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/necomav/dayplan/internal/cli"
	"github.com/necomav/dayplan/internal/db"
	"github.com/necomav/dayplan/internal/ownerlock"
	"github.com/necomav/dayplan/internal/repository"
	"github.com/necomav/dayplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.dayplan/dayplan.db
	dbPath := os.Getenv("DAYPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dayplan", "dayplan.db")
	}

	owner := os.Getenv("DAYPLAN_OWNER")
	if owner == "" {
		owner = "default"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	anchorSvc := service.NewAnchorService(taskRepo, profileRepo)

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo),
		Profile:  service.NewProfileService(profileRepo),
		Anchors:  anchorSvc,
		Autoplan: service.NewAutoplanService(taskRepo, profileRepo, anchorSvc),
		Schedule: service.NewScheduleService(taskRepo, profileRepo, uow),
		Locks:    ownerlock.New(),
		Owner:    owner,
	}

	// Detect interactive terminal for the conflict-resolution prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
