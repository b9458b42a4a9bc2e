package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RentalOperationType string

const (
	RentalOperationStartRent RentalOperationType = "START_RENT"
	RentalOperationEndRent   RentalOperationType = "END_RENT"
)

var minute = decimal.NewFromInt(int64(time.Minute))

// RentalLogEntry is one occupancy period of a scooter. EndDate is nil while
// the rental is open and is set exactly once when it is closed.
type RentalLogEntry struct {
	ID             uuid.UUID       `json:"id"`
	ScooterID      string          `json:"scooter_id"`
	PricePerMinute decimal.Decimal `json:"price_per_minute"` // snapshot taken at rental start
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
}

func NewRentalLogEntry(scooterID string, pricePerMinute decimal.Decimal, startDate time.Time) *RentalLogEntry {
	return &RentalLogEntry{
		ID:             uuid.New(),
		ScooterID:      scooterID,
		PricePerMinute: pricePerMinute,
		StartDate:      startDate,
	}
}

func (e *RentalLogEntry) IsOpen() bool {
	return e.EndDate == nil
}

// Duration returns the rented time of a closed entry, zero for an open one.
func (e *RentalLogEntry) Duration() time.Duration {
	if e.EndDate == nil {
		return 0
	}
	return e.EndDate.Sub(e.StartDate)
}

// Minutes returns the rented time in fractional minutes.
func (e *RentalLogEntry) Minutes() decimal.Decimal {
	return decimal.NewFromInt(int64(e.Duration())).Div(minute)
}

// Income is minutes times the price snapshot. Open entries earn nothing
// until they are closed.
func (e *RentalLogEntry) Income() decimal.Decimal {
	if e.IsOpen() {
		return decimal.Zero
	}
	return e.Minutes().Mul(e.PricePerMinute)
}

// Close sets the end date. The entry must be open.
func (e *RentalLogEntry) Close(endDate time.Time) {
	end := endDate
	e.EndDate = &end
}

// TotalIncome sums Income over entries, skipping open ones.
func TotalIncome(entries []RentalLogEntry) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].Income())
	}
	return total
}
