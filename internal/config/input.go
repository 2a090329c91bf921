package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/growth-calculator/internal/domain"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxHorizonPeriods caps scenario horizons (500 years of months) so a typo cannot
// ask the engine for an unbounded series.
const MaxHorizonPeriods = 6000

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses and validates configuration bytes
func (ip *InputParser) Load(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration rejects inputs the engine does not define behaviour for.
// The engine itself never validates.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.ValidateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// ValidateScenario validates a single scenario
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if money.NewMoneyFromDecimal(scenario.InitialBalance).LessThan(money.Zero()) {
		return fmt.Errorf("initial balance cannot be negative")
	}
	if money.NewMoneyFromDecimal(scenario.PeriodicContribution).LessThan(money.Zero()) {
		return fmt.Errorf("periodic contribution cannot be negative")
	}
	if scenario.RatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("rate percent cannot be negative")
	}
	if scenario.RateBasis != "" && scenario.RateBasis != domain.RateBasisAnnual && scenario.RateBasis != domain.RateBasisPerPeriod {
		return fmt.Errorf("rate basis must be 'annual' or 'per_period'")
	}
	if scenario.InflationPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("inflation percent cannot be negative")
	}
	if scenario.PassiveYieldPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("passive yield percent cannot be negative")
	}
	if scenario.ContributionFrequency < 0 {
		return fmt.Errorf("contribution frequency cannot be negative")
	}

	if scenario.HorizonPeriods < 0 {
		return fmt.Errorf("horizon periods cannot be negative")
	}
	if scenario.HorizonYears != nil && scenario.HorizonYears.LessThan(decimal.Zero) {
		return fmt.Errorf("horizon years cannot be negative")
	}
	if scenario.HorizonPeriods > MaxHorizonPeriods {
		return fmt.Errorf("horizon of %d months exceeds the maximum of %d", scenario.HorizonPeriods, MaxHorizonPeriods)
	}
	// checked in decimal before the int conversion in Horizon
	if scenario.HorizonPeriods == 0 && scenario.HorizonYears != nil &&
		scenario.HorizonYears.Mul(decimal.NewFromInt(domain.PeriodsPerYear)).Round(0).GreaterThan(decimal.NewFromInt(MaxHorizonPeriods)) {
		return fmt.Errorf("horizon of %s years exceeds the maximum of %d months", scenario.HorizonYears.String(), MaxHorizonPeriods)
	}
	horizon := scenario.Horizon()
	if horizon < 1 {
		return fmt.Errorf("horizon must be at least one month (set horizon_years or horizon_periods)")
	}
	if horizon > MaxHorizonPeriods {
		return fmt.Errorf("horizon of %d months exceeds the maximum of %d", horizon, MaxHorizonPeriods)
	}

	if scenario.Goal != nil {
		if err := ip.validateGoal(scenario.Goal); err != nil {
			return fmt.Errorf("goal validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateGoal(goal *domain.GoalSpec) error {
	if money.Zero().GreaterThanOrEqual(money.NewMoneyFromDecimal(goal.Target)) {
		return fmt.Errorf("target must be positive")
	}
	if goal.Mode != "" && goal.Mode != domain.GoalModeContribution && goal.Mode != domain.GoalModePeriods {
		return fmt.Errorf("mode must be 'contribution' or 'periods'")
	}
	if goal.MaxPeriods < 0 || goal.MaxPeriods > MaxHorizonPeriods {
		return fmt.Errorf("max periods must be between 0 and %d", MaxHorizonPeriods)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	start, _ := time.Parse("2006-01-02", "2025-01-01")
	fiveYears := decimal.NewFromInt(5)
	twentyYears := decimal.NewFromInt(20)

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:                  "Monthly 500 at 12%",
				InitialBalance:        decimal.NewFromInt(10000),
				PeriodicContribution:  decimal.NewFromInt(500),
				RatePercent:           decimal.NewFromInt(12),
				RateBasis:             domain.RateBasisAnnual,
				HorizonYears:          &fiveYears,
				ContributionFrequency: 1,
				InflationPercent:      decimal.NewFromInt(3),
				PassiveYieldPercent:   decimal.NewFromInt(1),
				StartDate:             &start,
				Goal: &domain.GoalSpec{
					Target:             decimal.NewFromInt(500000),
					Mode:               domain.GoalModeContribution,
					AdjustForInflation: true,
				},
			},
			{
				Name:                  "Quarterly 1500 until 500k",
				InitialBalance:        decimal.NewFromInt(10000),
				PeriodicContribution:  decimal.NewFromInt(1500),
				RatePercent:           decimal.NewFromInt(12),
				RateBasis:             domain.RateBasisAnnual,
				HorizonYears:          &twentyYears,
				ContributionFrequency: 3,
				InflationPercent:      decimal.NewFromInt(3),
				PassiveYieldPercent:   decimal.NewFromInt(1),
				StartDate:             &start,
				Goal: &domain.GoalSpec{
					Target:     decimal.NewFromInt(500000),
					Mode:       domain.GoalModePeriods,
					MaxPeriods: domain.DefaultMaxPeriods,
				},
			},
		},
	}
}
