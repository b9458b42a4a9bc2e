package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"scooter-rental-backend/internal/validation"
)

// Config represents the application configuration
type Config struct {
	Company   CompanyConfig   `yaml:"company"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Fleet     []FleetScooter  `yaml:"fleet"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

type CompanyConfig struct {
	Name string `yaml:"name"`
}

// PricingConfig contains the rental accounting settings
type PricingConfig struct {
	DailyCap string `yaml:"daily_cap"` // decimal, currency units
	Timezone string `yaml:"timezone"`  // IANA name or "Local"
}

// FleetScooter is a scooter seeded into the registry at start-up
type FleetScooter struct {
	ID             string `yaml:"id"`
	PricePerMinute string `yaml:"price_per_minute"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings (with seconds field)
type SchedulerConfig struct {
	Enabled           bool   `yaml:"enabled"`
	IncomeReport      string `yaml:"income_report"`
	OpenRentalsReport string `yaml:"open_rentals_report"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.overrideWithEnv()
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. A missing file yields defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("COMPANY_NAME"); val != "" {
		c.Company.Name = val
	}

	// Pricing
	if val := os.Getenv("PRICING_DAILY_CAP"); val != "" {
		c.Pricing.DailyCap = val
	}
	if val := os.Getenv("PRICING_TIMEZONE"); val != "" {
		c.Pricing.Timezone = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Scheduler
	if val := os.Getenv("SCHEDULER_ENABLED"); val != "" {
		c.Scheduler.Enabled = strings.EqualFold(val, "true") || val == "1"
	}
}

func (c *Config) applyDefaults() {
	if c.Company.Name == "" {
		c.Company.Name = "Scooter Rental"
	}
	if c.Pricing.DailyCap == "" {
		c.Pricing.DailyCap = "20"
	}
	if c.Pricing.Timezone == "" {
		c.Pricing.Timezone = "Local"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Scheduler.IncomeReport == "" {
		c.Scheduler.IncomeReport = "0 0 0 * * *" // Daily at midnight
	}
	if c.Scheduler.OpenRentalsReport == "" {
		c.Scheduler.OpenRentalsReport = "0 0 * * * *" // Hourly
	}
}

// Validate fills defaults and checks if the configuration is valid
func (c *Config) Validate() error {
	c.applyDefaults()

	dailyCap, err := decimal.NewFromString(c.Pricing.DailyCap)
	if err != nil {
		return fmt.Errorf("invalid daily cap %q: %w", c.Pricing.DailyCap, err)
	}
	if !dailyCap.IsPositive() {
		return fmt.Errorf("daily cap must be positive: %s", c.Pricing.DailyCap)
	}

	if _, err := time.LoadLocation(c.Pricing.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Pricing.Timezone, err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	seen := make(map[string]bool, len(c.Fleet))
	for i, s := range c.Fleet {
		if err := validation.ScooterID(s.ID); err != nil {
			return fmt.Errorf("fleet[%d]: %w", i, err)
		}
		if _, err := validation.ParsePrice(s.PricePerMinute); err != nil {
			return fmt.Errorf("fleet[%d] %s: %w", i, s.ID, err)
		}
		if seen[s.ID] {
			return fmt.Errorf("fleet[%d]: duplicate scooter id %q", i, s.ID)
		}
		seen[s.ID] = true
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Scheduler.IncomeReport); err != nil {
		return fmt.Errorf("invalid income_report schedule: %w", err)
	}
	if _, err := parser.Parse(c.Scheduler.OpenRentalsReport); err != nil {
		return fmt.Errorf("invalid open_rentals_report schedule: %w", err)
	}

	return nil
}

// DailyCap returns the parsed daily income cap
func (c *Config) DailyCap() decimal.Decimal {
	return decimal.RequireFromString(c.Pricing.DailyCap)
}

// Location returns the pricing timezone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Pricing.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
