package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"scooter-rental-backend/internal/domain"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/validation"
)

// rentalCompany drives the Available/Rented state machine of each scooter and
// records every transition in the rental log.
type rentalCompany struct {
	name         string
	mu           sync.Mutex
	scooterSvc   ScooterService
	rentalLogSvc RentalLogService
	clock        Clock
}

func NewRentalCompany(name string, scooterSvc ScooterService, rentalLogSvc RentalLogService, clock Clock) RentalCompany {
	if clock == nil {
		clock = NewClock(time.Local)
	}
	return &rentalCompany{
		name:         name,
		scooterSvc:   scooterSvc,
		rentalLogSvc: rentalLogSvc,
		clock:        clock,
	}
}

func (c *rentalCompany) Name() string {
	return c.name
}

func (c *rentalCompany) StartRent(ctx context.Context, id string) error {
	logger.EnterMethod("RentalCompany.StartRent", "scooter_id", id)
	c.mu.Lock()
	defer c.mu.Unlock()

	scooter, err := c.scooterSvc.GetScooterByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("RentalCompany.StartRent", err, "scooter_id", id)
		return err
	}
	if scooter.IsRented {
		err := domain.NewConflictError("scooter %q is currently rented", id)
		logger.ExitMethodWithError("RentalCompany.StartRent", err, "scooter_id", id)
		return err
	}

	if err := c.scooterSvc.SetRented(ctx, id, true); err != nil {
		logger.ExitMethodWithError("RentalCompany.StartRent", err, "scooter_id", id)
		return err
	}
	if err := c.rentalLogSvc.AddRentalLog(ctx, scooter.ID, scooter.PricePerMinute, domain.RentalOperationStartRent); err != nil {
		c.rollbackRented(ctx, id, false)
		logger.ExitMethodWithError("RentalCompany.StartRent", err, "scooter_id", id)
		return err
	}

	logger.ExitMethod("RentalCompany.StartRent", "scooter_id", id)
	return nil
}

// EndRent returns the price of the rental that was just closed.
func (c *rentalCompany) EndRent(ctx context.Context, id string) (decimal.Decimal, error) {
	logger.EnterMethod("RentalCompany.EndRent", "scooter_id", id)
	c.mu.Lock()
	defer c.mu.Unlock()

	scooter, err := c.scooterSvc.GetScooterByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("RentalCompany.EndRent", err, "scooter_id", id)
		return decimal.Zero, err
	}
	if !scooter.IsRented {
		err := domain.NewConflictError("scooter %q is not rented", id)
		logger.ExitMethodWithError("RentalCompany.EndRent", err, "scooter_id", id)
		return decimal.Zero, err
	}

	if err := c.scooterSvc.SetRented(ctx, id, false); err != nil {
		logger.ExitMethodWithError("RentalCompany.EndRent", err, "scooter_id", id)
		return decimal.Zero, err
	}
	if err := c.rentalLogSvc.AddRentalLog(ctx, scooter.ID, scooter.PricePerMinute, domain.RentalOperationEndRent); err != nil {
		// No open entry means a yearly report already closed the ride; the
		// scooter stays available.
		if !errors.Is(err, domain.ErrNotFound) {
			c.rollbackRented(ctx, id, true)
		}
		logger.ExitMethodWithError("RentalCompany.EndRent", err, "scooter_id", id)
		return decimal.Zero, err
	}

	price, err := c.rentalLogSvc.CalculateIncome(ctx, scooter.ID)
	if err != nil {
		logger.ExitMethodWithError("RentalCompany.EndRent", err, "scooter_id", id)
		return decimal.Zero, err
	}

	logger.ExitMethod("RentalCompany.EndRent", "scooter_id", id, "price", price.StringFixed(2))
	return price, nil
}

func (c *rentalCompany) CalculateIncome(ctx context.Context, year *int, includeOpenRentals bool) (decimal.Decimal, error) {
	currentYear := c.clock().Year()
	y := currentYear
	if year != nil {
		y = *year
	}
	if err := validation.IntRange("year", y, 0, currentYear); err != nil {
		return decimal.Zero, err
	}

	return c.rentalLogSvc.CalculateIncomeYearly(ctx, y, includeOpenRentals)
}

func (c *rentalCompany) rollbackRented(ctx context.Context, id string, rented bool) {
	if err := c.scooterSvc.SetRented(ctx, id, rented); err != nil {
		logger.Error("Failed to restore rented flag", "scooter_id", id, "is_rented", rented, "error", err)
	}
}
