package jobs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scooter-rental-backend/internal/config"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/repository/memory"
	"scooter-rental-backend/internal/service"
)

type MockRentalCompany struct {
	mock.Mock
}

func (m *MockRentalCompany) Name() string {
	return m.Called().String(0)
}
func (m *MockRentalCompany) StartRent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockRentalCompany) EndRent(ctx context.Context, id string) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentalCompany) CalculateIncome(ctx context.Context, year *int, includeOpenRentals bool) (decimal.Decimal, error) {
	args := m.Called(ctx, year, includeOpenRentals)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.InitializeWriter(&buf, "info", "json")
	t.Cleanup(func() { logger.Initialize("info", "text") })
	return &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func findLog(lines []map[string]any, msg string) []map[string]any {
	var found []map[string]any
	for _, l := range lines {
		if l["msg"] == msg {
			found = append(found, l)
		}
	}
	return found
}

type fleet struct {
	company   service.RentalCompany
	rentalLog service.RentalLogService
	now       time.Time
}

func newFleet(t *testing.T) *fleet {
	t.Helper()
	f := &fleet{now: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)}
	clock := func() time.Time { return f.now }

	store := memory.NewStore()
	scooters := service.NewScooterService(store.ScooterRepository)
	f.rentalLog = service.NewRentalLogService(store.RentalLogRepository, decimal.NewFromInt(20), clock)
	f.company = service.NewRentalCompany("Test Co", scooters, f.rentalLog, clock)

	ctx := context.Background()
	require.NoError(t, scooters.AddScooter(ctx, "S1", decimal.RequireFromString("0.5")))
	require.NoError(t, scooters.AddScooter(ctx, "S2", decimal.NewFromInt(1)))
	return f
}

func (f *fleet) runner() *JobRunner {
	cfg := config.Default()
	return NewJobRunner(&Services{Company: f.company, RentalLog: f.rentalLog}, cfg, func() time.Time { return f.now })
}

func TestIncomeReport(t *testing.T) {
	ctx := context.Background()
	f := newFleet(t)

	require.NoError(t, f.company.StartRent(ctx, "S1"))
	f.now = f.now.Add(10 * time.Minute)
	_, err := f.company.EndRent(ctx, "S1")
	require.NoError(t, err)
	require.NoError(t, f.company.StartRent(ctx, "S2"))
	f.now = f.now.Add(3 * time.Minute)

	buf := captureLogs(t)
	f.runner().IncomeReport()

	reports := findLog(logLines(t, buf), "Income report")
	require.Len(t, reports, 1)
	assert.Equal(t, "Test Co", reports[0]["company"])
	assert.Equal(t, "5.00", reports[0]["income"])
	assert.EqualValues(t, 2026, reports[0]["year"])

	// The open rental on S2 is still open after the report.
	entries, err := f.rentalLog.Entries(ctx, "S2")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsOpen())
}

func TestOpenRentalsReport(t *testing.T) {
	ctx := context.Background()
	f := newFleet(t)

	require.NoError(t, f.company.StartRent(ctx, "S1"))
	f.now = f.now.Add(5 * time.Minute)
	require.NoError(t, f.company.StartRent(ctx, "S2"))
	f.now = f.now.Add(2 * time.Hour)

	buf := captureLogs(t)
	f.runner().OpenRentalsReport()
	lines := logLines(t, buf)

	inProgress := findLog(lines, "Rental in progress")
	require.Len(t, inProgress, 2)
	assert.Equal(t, "S1", inProgress[0]["scooter_id"])
	assert.EqualValues(t, 125, inProgress[0]["elapsed_minutes"])
	assert.Equal(t, "2 hours ago", inProgress[0]["started"])
	assert.Equal(t, "S2", inProgress[1]["scooter_id"])

	summary := findLog(lines, "Open rentals")
	require.Len(t, summary, 1)
	assert.EqualValues(t, 2, summary[0]["count"])
}

func TestRunWithRecovery(t *testing.T) {
	company := new(MockRentalCompany)
	company.On("CalculateIncome", mock.Anything, (*int)(nil), false).Run(func(mock.Arguments) {
		panic("boom")
	})

	buf := captureLogs(t)
	jr := NewJobRunner(&Services{Company: company}, config.Default(), nil)

	assert.NotPanics(t, jr.IncomeReport)

	panics := findLog(logLines(t, buf), "Job panicked")
	require.Len(t, panics, 1)
	assert.Equal(t, "IncomeReport", panics[0]["job"])
	company.AssertExpectations(t)
}

func TestIncomeReport_Error(t *testing.T) {
	company := new(MockRentalCompany)
	company.On("CalculateIncome", mock.Anything, (*int)(nil), false).
		Return(decimal.Zero, assert.AnError)

	buf := captureLogs(t)
	NewJobRunner(&Services{Company: company}, config.Default(), nil).IncomeReport()

	lines := logLines(t, buf)
	assert.Len(t, findLog(lines, "Failed to calculate income"), 1)
	assert.Empty(t, findLog(lines, "Income report"))
	assert.Len(t, findLog(lines, "Job completed"), 1)
}
