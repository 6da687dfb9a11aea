package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/cli"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/db"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/repository"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.studyplan/studyplan.db
	dbPath := os.Getenv("STUDYPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studyplan", "studyplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)

	app := &cli.App{
		Session:   service.NewSessionService(scheduleRepo, historyRepo),
		Schedules: scheduleRepo,
	}

	// Detect interactive terminal so a piped stdin runs as a script.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
