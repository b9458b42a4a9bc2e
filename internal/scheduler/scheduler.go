package scheduler

import (
	"github.com/robfig/cron/v3"

	"scooter-rental-backend/internal/jobs"
	"scooter-rental-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Schedules run in the pricing timezone with seconds precision
	c := cron.New(
		cron.WithLocation(jobRunner.Config().Location()),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.IncomeReport, s.jobs.IncomeReport)
	if err != nil {
		logger.Error("Failed to register IncomeReport job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.OpenRentalsReport, s.jobs.OpenRentalsReport)
	if err != nil {
		logger.Error("Failed to register OpenRentalsReport job", "error", err)
	}

	logger.Info("Cron jobs registered", "count", len(s.cron.Entries()))
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// JobCount returns the number of registered jobs
func (s *Scheduler) JobCount() int {
	return len(s.cron.Entries())
}
