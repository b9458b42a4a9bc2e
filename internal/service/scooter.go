package service

import (
	"context"

	"github.com/shopspring/decimal"

	"scooter-rental-backend/internal/domain"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/repository"
	"scooter-rental-backend/internal/validation"
)

type scooterService struct {
	scooterRepo repository.ScooterRepository
}

func NewScooterService(scooterRepo repository.ScooterRepository) ScooterService {
	return &scooterService{scooterRepo: scooterRepo}
}

func (s *scooterService) AddScooter(ctx context.Context, id string, pricePerMinute decimal.Decimal) error {
	if err := validation.ScooterID(id); err != nil {
		return err
	}
	if err := validation.PricePerMinute(pricePerMinute); err != nil {
		return err
	}

	if err := s.scooterRepo.Create(ctx, domain.NewScooter(id, pricePerMinute)); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Scooter added", "scooter_id", id, "price_per_minute", pricePerMinute.String())
	return nil
}

func (s *scooterService) RemoveScooter(ctx context.Context, id string) error {
	scooter, err := s.GetScooterByID(ctx, id)
	if err != nil {
		return err
	}
	if scooter.IsRented {
		return domain.NewConflictError("scooter %q is rented and cannot be removed", id)
	}

	if err := s.scooterRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Scooter removed", "scooter_id", id)
	return nil
}

func (s *scooterService) GetScooters(ctx context.Context) ([]domain.Scooter, error) {
	return s.scooterRepo.List(ctx)
}

func (s *scooterService) GetScooterByID(ctx context.Context, id string) (*domain.Scooter, error) {
	if err := validation.ScooterID(id); err != nil {
		return nil, err
	}
	return s.scooterRepo.GetByID(ctx, id)
}

func (s *scooterService) SetRented(ctx context.Context, id string, rented bool) error {
	scooter, err := s.GetScooterByID(ctx, id)
	if err != nil {
		return err
	}
	scooter.IsRented = rented
	return s.scooterRepo.Update(ctx, scooter)
}
