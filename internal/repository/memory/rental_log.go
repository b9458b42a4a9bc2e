package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"scooter-rental-backend/internal/domain"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/repository"
)

// rentalLogRepository keeps every entry in start order per scooter plus an
// index of the single open entry per scooter.
type rentalLogRepository struct {
	mu        sync.RWMutex
	byScooter map[string][]*domain.RentalLogEntry
	byID      map[uuid.UUID]*domain.RentalLogEntry
	open      map[string]*domain.RentalLogEntry
	order     []*domain.RentalLogEntry
}

func NewRentalLogRepository() repository.RentalLogRepository {
	return &rentalLogRepository{
		byScooter: make(map[string][]*domain.RentalLogEntry),
		byID:      make(map[uuid.UUID]*domain.RentalLogEntry),
		open:      make(map[string]*domain.RentalLogEntry),
	}
}

func (r *rentalLogRepository) Create(ctx context.Context, entry *domain.RentalLogEntry) error {
	logger.StoreCall("rental_log.create", "scooter_id", entry.ScooterID, "entry_id", entry.ID)
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.open[entry.ScooterID]; ok && entry.IsOpen() {
		return domain.NewConflictError("scooter %q already has an open rental", entry.ScooterID)
	}
	if _, ok := r.byID[entry.ID]; ok {
		return domain.NewConflictError("rental log entry %s already exists", entry.ID)
	}

	stored := *entry
	if entry.EndDate != nil {
		end := *entry.EndDate
		stored.EndDate = &end
	}

	r.byID[stored.ID] = &stored
	r.order = append(r.order, &stored)
	r.byScooter[stored.ScooterID] = append(r.byScooter[stored.ScooterID], &stored)
	sort.SliceStable(r.byScooter[stored.ScooterID], func(i, j int) bool {
		list := r.byScooter[stored.ScooterID]
		return list[i].StartDate.Before(list[j].StartDate)
	})
	if stored.IsOpen() {
		r.open[stored.ScooterID] = &stored
	}
	return nil
}

func (r *rentalLogRepository) GetOpenByScooter(ctx context.Context, scooterID string) (*domain.RentalLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.open[scooterID]
	if !ok {
		return nil, domain.NewNotFoundError("open rental for scooter", scooterID)
	}
	c := *e
	return &c, nil
}

func (r *rentalLogRepository) Close(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	logger.StoreCall("rental_log.close", "entry_id", id, "end_date", endDate)
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return domain.NewNotFoundError("rental log entry", id.String())
	}
	if !e.IsOpen() {
		return domain.NewConflictError("rental log entry %s is already closed", id)
	}
	e.Close(endDate)
	delete(r.open, e.ScooterID)
	return nil
}

func (r *rentalLogRepository) ListClosedByScooter(ctx context.Context, scooterID string) ([]domain.RentalLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	closed := copyEntries(r.byScooter[scooterID], func(e *domain.RentalLogEntry) bool { return !e.IsOpen() })
	sort.SliceStable(closed, func(i, j int) bool { return closed[i].EndDate.After(*closed[j].EndDate) })
	return closed, nil
}

func (r *rentalLogRepository) ListClosed(ctx context.Context) ([]domain.RentalLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyEntries(r.order, func(e *domain.RentalLogEntry) bool { return !e.IsOpen() }), nil
}

func (r *rentalLogRepository) ListOpen(ctx context.Context) ([]domain.RentalLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyEntries(r.order, func(e *domain.RentalLogEntry) bool { return e.IsOpen() }), nil
}

func (r *rentalLogRepository) ListByScooter(ctx context.Context, scooterID string) ([]domain.RentalLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if scooterID != "" {
		return copyEntries(r.byScooter[scooterID], nil), nil
	}
	all := copyEntries(r.order, nil)
	sort.SliceStable(all, func(i, j int) bool { return all[i].StartDate.Before(all[j].StartDate) })
	return all, nil
}

func copyEntries(src []*domain.RentalLogEntry, keep func(*domain.RentalLogEntry) bool) []domain.RentalLogEntry {
	out := make([]domain.RentalLogEntry, 0, len(src))
	for _, e := range src {
		if keep != nil && !keep(e) {
			continue
		}
		c := *e
		if e.EndDate != nil {
			end := *e.EndDate
			c.EndDate = &end
		}
		out = append(out, c)
	}
	return out
}
