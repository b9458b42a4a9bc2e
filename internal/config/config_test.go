package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "20", cfg.Pricing.DailyCap)
	assert.Equal(t, "Local", cfg.Pricing.Timezone)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "0 0 0 * * *", cfg.Scheduler.IncomeReport)
	assert.Equal(t, "0 0 * * * *", cfg.Scheduler.OpenRentalsReport)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Empty(t, cfg.Fleet)
	assert.Equal(t, time.Local, cfg.Location())
	assert.Equal(t, "20", cfg.DailyCap().String())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
company:
  name: Downtown Scooters
pricing:
  daily_cap: "35.50"
  timezone: UTC
fleet:
  - id: Scooter1
    price_per_minute: "0.25"
  - id: Scooter2
    price_per_minute: "1"
log:
  level: debug
  format: json
scheduler:
  enabled: true
  income_report: "@daily"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Downtown Scooters", cfg.Company.Name)
	assert.Equal(t, "35.5", cfg.DailyCap().String())
	assert.Equal(t, time.UTC, cfg.Location())
	require.Len(t, cfg.Fleet, 2)
	assert.Equal(t, "Scooter1", cfg.Fleet[0].ID)
	assert.Equal(t, "0.25", cfg.Fleet[0].PricePerMinute)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "@daily", cfg.Scheduler.IncomeReport)
	assert.Equal(t, "0 0 * * * *", cfg.Scheduler.OpenRentalsReport)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "pricing:\n  daily_cap: \"10\"\n")
	t.Setenv("PRICING_DAILY_CAP", "15")
	t.Setenv("PRICING_TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SCHEDULER_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "15", cfg.Pricing.DailyCap)
	assert.Equal(t, "UTC", cfg.Pricing.Timezone)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Scheduler.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Malformed Yaml", "pricing: ["},
		{"Bad Cap", "pricing:\n  daily_cap: abc\n"},
		{"Zero Cap", "pricing:\n  daily_cap: \"0\"\n"},
		{"Bad Timezone", "pricing:\n  timezone: Mars/Olympus\n"},
		{"Bad Log Format", "log:\n  format: xml\n"},
		{"Empty Fleet Id", "fleet:\n  - id: \" \"\n    price_per_minute: \"1\"\n"},
		{"Negative Fleet Price", "fleet:\n  - id: S1\n    price_per_minute: \"-1\"\n"},
		{"Duplicate Fleet Id", "fleet:\n  - id: S1\n    price_per_minute: \"1\"\n  - id: S1\n    price_per_minute: \"2\"\n"},
		{"Bad Schedule", "scheduler:\n  income_report: \"every day\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Scooter Rental", cfg.Company.Name)
	assert.NoError(t, cfg.Validate())
}
