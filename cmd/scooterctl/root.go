package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"scooter-rental-backend/internal/config"
	"scooter-rental-backend/internal/console"
	"scooter-rental-backend/internal/jobs"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/repository/memory"
	"scooter-rental-backend/internal/service"
	"scooter-rental-backend/internal/validation"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "scooterctl",
	Short: "Run a scooter rental company from the terminal",
	Long: `scooterctl keeps a fleet of scooters and a rental log in memory.
Without a subcommand it starts an interactive shell; type "help" for the
available commands.`,
	SilenceUsage: true,
	RunE:         runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}

// app holds the wired services for one process
type app struct {
	cfg     *config.Config
	console *console.Handler
	jobs    *jobs.JobRunner
}

// newApp loads configuration, initializes the logger and wires the services
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting scooter rental company", "company", cfg.Company.Name, "log_level", cfg.Log.Level)
	logger.Info("Pricing configuration", "daily_cap", cfg.Pricing.DailyCap, "timezone", cfg.Pricing.Timezone)

	// Initialize Repositories
	store := memory.NewStore()

	// Initialize Services
	clock := service.NewClock(cfg.Location())
	scooterSvc := service.NewScooterService(store.ScooterRepository)
	rentalLogSvc := service.NewRentalLogService(store.RentalLogRepository, cfg.DailyCap(), clock)
	company := service.NewRentalCompany(cfg.Company.Name, scooterSvc, rentalLogSvc, clock)

	// Seed fleet
	for _, s := range cfg.Fleet {
		price, err := validation.ParsePrice(s.PricePerMinute)
		if err != nil {
			return nil, fmt.Errorf("fleet scooter %s: %w", s.ID, err)
		}
		if err := scooterSvc.AddScooter(ctx, s.ID, price); err != nil {
			return nil, fmt.Errorf("fleet scooter %s: %w", s.ID, err)
		}
	}
	logger.Info("Fleet loaded", "scooters", len(cfg.Fleet))

	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Company:   company,
		RentalLog: rentalLogSvc,
	}, cfg, clock)

	return &app{
		cfg:     cfg,
		console: console.NewHandler(company, scooterSvc, rentalLogSvc, clock),
		jobs:    jobRunner,
	}, nil
}
