package memory

import (
	"context"
	"sort"
	"sync"

	"scooter-rental-backend/internal/domain"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/repository"
)

type scooterRepository struct {
	mu       sync.RWMutex
	scooters map[string]domain.Scooter
}

func NewScooterRepository() repository.ScooterRepository {
	return &scooterRepository{scooters: make(map[string]domain.Scooter)}
}

func (r *scooterRepository) Create(ctx context.Context, scooter *domain.Scooter) error {
	logger.StoreCall("scooter.create", "scooter_id", scooter.ID)
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scooters[scooter.ID]; ok {
		return domain.NewConflictError("scooter %q already exists", scooter.ID)
	}
	r.scooters[scooter.ID] = *scooter
	return nil
}

func (r *scooterRepository) GetByID(ctx context.Context, id string) (*domain.Scooter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scooters[id]
	if !ok {
		return nil, domain.NewNotFoundError("scooter", id)
	}
	return &s, nil
}

func (r *scooterRepository) Update(ctx context.Context, scooter *domain.Scooter) error {
	logger.StoreCall("scooter.update", "scooter_id", scooter.ID, "is_rented", scooter.IsRented)
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scooters[scooter.ID]; !ok {
		return domain.NewNotFoundError("scooter", scooter.ID)
	}
	r.scooters[scooter.ID] = *scooter
	return nil
}

func (r *scooterRepository) Delete(ctx context.Context, id string) error {
	logger.StoreCall("scooter.delete", "scooter_id", id)
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scooters[id]; !ok {
		return domain.NewNotFoundError("scooter", id)
	}
	delete(r.scooters, id)
	return nil
}

func (r *scooterRepository) List(ctx context.Context) ([]domain.Scooter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scooters := make([]domain.Scooter, 0, len(r.scooters))
	for _, s := range r.scooters {
		scooters = append(scooters, s)
	}
	sort.Slice(scooters, func(i, j int) bool { return scooters[i].ID < scooters[j].ID })
	return scooters, nil
}
