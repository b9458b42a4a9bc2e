package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"scooter-rental-backend/internal/domain"
)

// Clock returns the current instant. Services never call time.Now directly.
type Clock func() time.Time

// NewClock returns a Clock reporting wall time in loc.
func NewClock(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

type ScooterService interface {
	AddScooter(ctx context.Context, id string, pricePerMinute decimal.Decimal) error
	RemoveScooter(ctx context.Context, id string) error
	GetScooters(ctx context.Context) ([]domain.Scooter, error)
	GetScooterByID(ctx context.Context, id string) (*domain.Scooter, error)
	SetRented(ctx context.Context, id string, rented bool) error
}

type RentalLogService interface {
	AddRentalLog(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal, op domain.RentalOperationType) error
	RecordStart(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal) error
	RecordEnd(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal) error
	CalculateIncome(ctx context.Context, scooterID string) (decimal.Decimal, error)
	CalculateIncomeYearly(ctx context.Context, year int, includeOpenRentals bool) (decimal.Decimal, error)
	Entries(ctx context.Context, scooterID string) ([]domain.RentalLogEntry, error)
}

type RentalCompany interface {
	Name() string
	StartRent(ctx context.Context, id string) error
	EndRent(ctx context.Context, id string) (decimal.Decimal, error)
	// CalculateIncome reports income for year, the current year when nil.
	CalculateIncome(ctx context.Context, year *int, includeOpenRentals bool) (decimal.Decimal, error)
}
