package domain

import "github.com/shopspring/decimal"

type ScooterStatus string

const (
	ScooterStatusAvailable ScooterStatus = "AVAILABLE"
	ScooterStatusRented    ScooterStatus = "RENTED"
)

type Scooter struct {
	ID             string          `json:"id"`
	PricePerMinute decimal.Decimal `json:"price_per_minute"`
	IsRented       bool            `json:"is_rented"`
}

func NewScooter(id string, pricePerMinute decimal.Decimal) *Scooter {
	return &Scooter{ID: id, PricePerMinute: pricePerMinute}
}

// Status derives the rental state from the rented flag.
func (s *Scooter) Status() ScooterStatus {
	if s.IsRented {
		return ScooterStatusRented
	}
	return ScooterStatusAvailable
}
