package jobs

import (
	"scooter-rental-backend/internal/config"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	config   *config.Config
	clock    service.Clock
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Company   service.RentalCompany
	RentalLog service.RentalLogService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(services *Services, cfg *config.Config, clock service.Clock) *JobRunner {
	if clock == nil {
		clock = service.NewClock(cfg.Location())
	}
	return &JobRunner{
		services: services,
		config:   cfg,
		clock:    clock,
	}
}

// Config returns the configuration the jobs were built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllReports runs every report once (for manual execution)
func (jr *JobRunner) RunAllReports() {
	jr.IncomeReport()
	jr.OpenRentalsReport()
}
