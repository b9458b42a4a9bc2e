// Package memory implements the repository ports with mutex-guarded maps.
// State lives for the lifetime of the process only.
package memory

import "scooter-rental-backend/internal/repository"

type Store struct {
	repository.ScooterRepository
	repository.RentalLogRepository
}

func NewStore() *Store {
	return &Store{
		ScooterRepository:   NewScooterRepository(),
		RentalLogRepository: NewRentalLogRepository(),
	}
}
