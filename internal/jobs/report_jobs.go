package jobs

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"scooter-rental-backend/internal/logger"
)

// IncomeReport logs the company's income for the current year, excluding
// rentals still in progress.
func (jr *JobRunner) IncomeReport() {
	jr.runWithRecovery("IncomeReport", func() {
		ctx := context.Background()
		now := jr.clock()

		income, err := jr.services.Company.CalculateIncome(ctx, nil, false)
		if err != nil {
			logger.Error("Failed to calculate income", "error", err)
			return
		}

		logger.Info("Income report",
			"company", jr.services.Company.Name(),
			"year", now.Year(),
			"income", income.StringFixed(2))
	})
}

// OpenRentalsReport logs every rental that is still in progress
func (jr *JobRunner) OpenRentalsReport() {
	jr.runWithRecovery("OpenRentalsReport", func() {
		ctx := context.Background()
		now := jr.clock()

		entries, err := jr.services.RentalLog.Entries(ctx, "")
		if err != nil {
			logger.Error("Failed to list rental log", "error", err)
			return
		}

		count := 0
		for _, e := range entries {
			if !e.IsOpen() {
				continue
			}
			count++
			logger.Info("Rental in progress",
				"scooter_id", e.ScooterID,
				"started", humanize.RelTime(e.StartDate, now, "ago", "from now"),
				"elapsed_minutes", int64(now.Sub(e.StartDate)/time.Minute))
		}

		logger.Info("Open rentals", "count", count)
	})
}
