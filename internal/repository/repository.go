package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"scooter-rental-backend/internal/domain"
)

// ScooterRepository is the scooter registry store. Implementations must be
// safe for concurrent use; GetByID returns *domain.NotFoundError when absent.
type ScooterRepository interface {
	Create(ctx context.Context, scooter *domain.Scooter) error
	GetByID(ctx context.Context, id string) (*domain.Scooter, error)
	Update(ctx context.Context, scooter *domain.Scooter) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Scooter, error)
}

// RentalLogRepository stores rental log entries indexed by scooter.
// Returned entries are copies; mutate through Close only.
type RentalLogRepository interface {
	Create(ctx context.Context, entry *domain.RentalLogEntry) error
	GetOpenByScooter(ctx context.Context, scooterID string) (*domain.RentalLogEntry, error)
	Close(ctx context.Context, id uuid.UUID, endDate time.Time) error

	// ListClosedByScooter orders entries by end date, most recent first.
	ListClosedByScooter(ctx context.Context, scooterID string) ([]domain.RentalLogEntry, error)
	ListClosed(ctx context.Context) ([]domain.RentalLogEntry, error)
	ListOpen(ctx context.Context) ([]domain.RentalLogEntry, error)

	// ListByScooter orders entries by start date; an empty id lists all.
	ListByScooter(ctx context.Context, scooterID string) ([]domain.RentalLogEntry, error)
}
