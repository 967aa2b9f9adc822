package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/studyplan/internal/cli"
	"github.com/alexanderramin/studyplan/internal/config"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/intelligence"
	"github.com/alexanderramin/studyplan/internal/keyring"
	"github.com/alexanderramin/studyplan/internal/llm"
	"github.com/alexanderramin/studyplan/internal/logger"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/service"
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

	log, err := logger.New(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir})
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	goalRepo := repository.NewSQLiteGoalRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	taskRepo := repository.NewSQLiteScheduledTaskRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(log)

	// The plan generator only exists when an LLM provider is configured.
	var generator service.PlanGenerator
	llmCfg := cfg.ToLLM()
	if llmCfg.Enabled() {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(log)
		}
		client, err := llm.NewClient(llmCfg, llmObserver)
		if err != nil {
			return fmt.Errorf("configuring %s client: %w", llmCfg.Provider, err)
		}
		generator = intelligence.NewPlanGenerator(client)
	}

	app := &cli.App{
		Goals:    service.NewGoalService(goalRepo),
		Plans:    service.NewPlanService(goalRepo, planRepo, settingsRepo, uow, generator, observer),
		Schedule: service.NewScheduleService(uow, observer),
		Tasks:    service.NewTaskService(taskRepo, planRepo, settingsRepo),
		Settings: service.NewSettingsService(settingsRepo),
		APIKeys:  keyring.Store{},
	}

	// Forms and the generation spinner need a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
