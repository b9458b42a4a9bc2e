// Package validation holds the guard clauses run before any state mutation.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"scooter-rental-backend/internal/domain"
)

// ScooterID rejects empty and whitespace-only identifiers.
func ScooterID(id string) error {
	if id == "" {
		return domain.NewValidationError("scooter_id", "required input was empty")
	}
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("scooter_id", "required input was whitespace")
	}
	return nil
}

// PricePerMinute rejects zero and negative prices.
func PricePerMinute(price decimal.Decimal) error {
	if price.IsZero() {
		return domain.NewValidationError("price_per_minute", "cannot be zero")
	}
	if price.IsNegative() {
		return domain.NewOutOfRangeError("price_per_minute", price, "0 (exclusive)", "max")
	}
	return nil
}

// IntRange rejects values outside the inclusive range [lo, hi].
func IntRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return domain.NewOutOfRangeError(field, value, lo, hi)
	}
	return nil
}

// ParsePrice parses a decimal price string and validates it.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domain.NewValidationError("price_per_minute", "not a decimal number: "+raw)
	}
	if err := PricePerMinute(price); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}
