package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scooter-rental-backend/internal/jobs"
	"scooter-rental-backend/internal/logger"
)

var reportCmd = &cobra.Command{
	Use:       "report <job>",
	Short:     "Run a scheduled report once and exit",
	Long:      `Runs one of the scheduled reports immediately: income, open-rentals or all.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"income", "open-rentals", "all"},
	RunE:      runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info("Running job once", "job", args[0])
	if err := runJobOnce(a.jobs, args[0]); err != nil {
		return err
	}
	logger.Info("Job execution completed", "job", args[0])
	return nil
}

// runJobOnce runs a specific job once
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) error {
	switch jobName {
	case "income":
		jobRunner.IncomeReport()
	case "open-rentals":
		jobRunner.OpenRentalsReport()
	case "all":
		jobRunner.RunAllReports()
	default:
		return fmt.Errorf("unknown job %q (available: income, open-rentals, all)", jobName)
	}
	return nil
}
