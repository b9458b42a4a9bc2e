package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"scooter-rental-backend/internal/domain"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// MockScooterService
type MockScooterService struct {
	mock.Mock
}

func (m *MockScooterService) AddScooter(ctx context.Context, id string, pricePerMinute decimal.Decimal) error {
	args := m.Called(ctx, id, pricePerMinute)
	return args.Error(0)
}
func (m *MockScooterService) RemoveScooter(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockScooterService) GetScooters(ctx context.Context) ([]domain.Scooter, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Scooter), args.Error(1)
}
func (m *MockScooterService) GetScooterByID(ctx context.Context, id string) (*domain.Scooter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scooter), args.Error(1)
}
func (m *MockScooterService) SetRented(ctx context.Context, id string, rented bool) error {
	args := m.Called(ctx, id, rented)
	return args.Error(0)
}

// MockRentalLogService
type MockRentalLogService struct {
	mock.Mock
}

func (m *MockRentalLogService) AddRentalLog(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal, op domain.RentalOperationType) error {
	args := m.Called(ctx, scooterID, pricePerMinute, op)
	return args.Error(0)
}
func (m *MockRentalLogService) RecordStart(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal) error {
	args := m.Called(ctx, scooterID, pricePerMinute)
	return args.Error(0)
}
func (m *MockRentalLogService) RecordEnd(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal) error {
	args := m.Called(ctx, scooterID, pricePerMinute)
	return args.Error(0)
}
func (m *MockRentalLogService) CalculateIncome(ctx context.Context, scooterID string) (decimal.Decimal, error) {
	args := m.Called(ctx, scooterID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentalLogService) CalculateIncomeYearly(ctx context.Context, year int, includeOpenRentals bool) (decimal.Decimal, error) {
	args := m.Called(ctx, year, includeOpenRentals)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentalLogService) Entries(ctx context.Context, scooterID string) ([]domain.RentalLogEntry, error) {
	args := m.Called(ctx, scooterID)
	return args.Get(0).([]domain.RentalLogEntry), args.Error(1)
}
