package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"scooter-rental-backend/internal/domain"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/repository"
	"scooter-rental-backend/internal/validation"
)

// DefaultDailyCap is the income at which a closing rental is clamped to the
// next midnight.
var DefaultDailyCap = decimal.NewFromInt(20)

// rentalLogService is the system of record for rental periods. A single
// mutex serialises every read-modify-write over the log.
type rentalLogService struct {
	mu         sync.Mutex
	rentalRepo repository.RentalLogRepository
	dailyCap   decimal.Decimal
	clock      Clock
}

func NewRentalLogService(rentalRepo repository.RentalLogRepository, dailyCap decimal.Decimal, clock Clock) RentalLogService {
	if clock == nil {
		clock = NewClock(time.Local)
	}
	return &rentalLogService{
		rentalRepo: rentalRepo,
		dailyCap:   dailyCap,
		clock:      clock,
	}
}

func (s *rentalLogService) AddRentalLog(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal, op domain.RentalOperationType) error {
	switch op {
	case domain.RentalOperationStartRent:
		return s.RecordStart(ctx, scooterID, pricePerMinute)
	case domain.RentalOperationEndRent:
		return s.RecordEnd(ctx, scooterID, pricePerMinute)
	default:
		return domain.NewValidationError("operation_type", fmt.Sprintf("unknown rental operation %q", op))
	}
}

func (s *rentalLogService) RecordStart(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal) error {
	if err := validation.ScooterID(scooterID); err != nil {
		return err
	}
	if err := validation.PricePerMinute(pricePerMinute); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.rentalRepo.GetOpenByScooter(ctx, scooterID); err == nil {
		return domain.NewConflictError("scooter %q already has an open rental", scooterID)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to look up open rental: %w", err)
	}

	entry := domain.NewRentalLogEntry(scooterID, pricePerMinute, s.clock())
	if err := s.rentalRepo.Create(ctx, entry); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Rental started", "scooter_id", scooterID, "entry_id", entry.ID, "start_date", entry.StartDate)
	return nil
}

// RecordEnd closes the open entry of scooterID. When the income of the
// scooter's already-closed entries has reached the daily cap, the end date is
// the next midnight instead of now.
func (s *rentalLogService) RecordEnd(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal) error {
	if err := validation.ScooterID(scooterID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.rentalRepo.GetOpenByScooter(ctx, scooterID)
	if err != nil {
		return err
	}

	closed, err := s.rentalRepo.ListClosedByScooter(ctx, scooterID)
	if err != nil {
		return fmt.Errorf("failed to list closed rentals: %w", err)
	}
	accumulated := domain.TotalIncome(closed)

	now := s.clock()
	endDate := now
	if accumulated.GreaterThanOrEqual(s.dailyCap) {
		endDate = NextMidnight(now)
		logger.InfoContext(ctx, "Daily cap reached, rental end moved to next midnight",
			"scooter_id", scooterID, "accumulated", accumulated.String(), "daily_cap", s.dailyCap.String(), "end_date", endDate)
	}

	if err := s.rentalRepo.Close(ctx, open.ID, endDate); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Rental ended", "scooter_id", scooterID, "entry_id", open.ID,
		"end_date", endDate, "price_per_minute", pricePerMinute.String())
	return nil
}

// CalculateIncome returns the income of the most recently closed entry.
func (s *rentalLogService) CalculateIncome(ctx context.Context, scooterID string) (decimal.Decimal, error) {
	if err := validation.ScooterID(scooterID); err != nil {
		return decimal.Zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	closed, err := s.rentalRepo.ListClosedByScooter(ctx, scooterID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list closed rentals: %w", err)
	}
	if len(closed) == 0 {
		return decimal.Zero, domain.NewNotFoundError("closed rental for scooter", scooterID)
	}
	return closed[0].Income(), nil
}

// CalculateIncomeYearly sums closed entries that started in or before year.
// With includeOpenRentals, every open entry that started in or before the
// current year is closed at the evaluation instant and counted too; the
// scooters' rented flags are left alone.
func (s *rentalLogService) CalculateIncomeYearly(ctx context.Context, year int, includeOpenRentals bool) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	closed, err := s.rentalRepo.ListClosed(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list closed rentals: %w", err)
	}

	completed := decimal.Zero
	for i := range closed {
		if closed[i].StartDate.Year() <= year {
			completed = completed.Add(closed[i].Income())
		}
	}

	if !includeOpenRentals {
		return completed, nil
	}

	open, err := s.rentalRepo.ListOpen(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list open rentals: %w", err)
	}

	now := s.clock()
	inProgress := decimal.Zero
	for i := range open {
		e := &open[i]
		if e.StartDate.Year() > now.Year() {
			continue
		}
		if err := s.rentalRepo.Close(ctx, e.ID, now); err != nil {
			return decimal.Zero, err
		}
		e.Close(now)
		inProgress = inProgress.Add(e.Income())
		logger.InfoContext(ctx, "Open rental consolidated by income report", "scooter_id", e.ScooterID, "entry_id", e.ID, "end_date", now)
	}

	return completed.Add(inProgress), nil
}

func (s *rentalLogService) Entries(ctx context.Context, scooterID string) ([]domain.RentalLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rentalRepo.ListByScooter(ctx, scooterID)
}

// NextMidnight returns 00:00 of the calendar day after t, in t's location.
func NextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
