package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validConfigYAML = `scenarios:
  - name: "Example"
    initial_balance: 10000
    periodic_contribution: 500
    rate_percent: 12
    rate_basis: Annual
    horizon_years: 2.5
    contribution_frequency: 1
    inflation_percent: 3
    passive_yield_percent: 1
    start_date: 2025-01-01
    goal:
      target: 500000
      mode: Contribution
      adjust_for_inflation: true
  - name: "Per period"
    initial_balance: 0
    periodic_contribution: 100
    rate_percent: 1
    rate_basis: per_period
    horizon_periods: 24
    goal:
      target: 1200
      mode: periods
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func createValidTestConfiguration() *domain.Configuration {
	years := decimal.NewFromInt(5)
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:                 "Valid",
				InitialBalance:       decimal.NewFromInt(1000),
				PeriodicContribution: decimal.NewFromInt(500),
				RatePercent:          decimal.NewFromInt(12),
				HorizonYears:         &years,
				Goal:                 &domain.GoalSpec{Target: decimal.NewFromInt(50000)},
			},
		},
	}
}

func TestNewInputParser(t *testing.T) {
	assert.NotNil(t, NewInputParser())
}

func TestLoadFromFile_Success(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, validConfigYAML))
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)

	sc := config.Scenarios[0]
	assert.Equal(t, "Example", sc.Name)
	assert.True(t, sc.InitialBalance.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, domain.RateBasisAnnual, sc.RateBasis)
	require.NotNil(t, sc.HorizonYears)
	assert.True(t, sc.HorizonYears.Equal(decimal.NewFromFloat(2.5)))
	assert.Equal(t, 30, sc.Horizon())
	require.NotNil(t, sc.StartDate)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), sc.StartDate.UTC())
	require.NotNil(t, sc.Goal)
	assert.Equal(t, domain.GoalModeContribution, sc.Goal.Mode)
	assert.True(t, sc.Goal.AdjustForInflation)

	pp := config.Scenarios[1]
	assert.Equal(t, domain.RateBasisPerPeriod, pp.RateBasis)
	assert.Equal(t, 24, pp.Horizon())
	assert.Nil(t, pp.StartDate)
	assert.Equal(t, domain.GoalModePeriods, pp.Goal.Mode)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "scenarios:\n\t- name: broken\n"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_BadHorizonYears(t *testing.T) {
	_, err := NewInputParser().Load([]byte("scenarios:\n  - name: x\n    horizon_years: soon\n"))
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestLoad_ValidationError(t *testing.T) {
	_, err := NewInputParser().Load([]byte("scenarios:\n  - name: x\n    initial_balance: -1\n    horizon_periods: 12\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "initial balance cannot be negative")
}

func TestValidateConfiguration_Success(t *testing.T) {
	assert.NoError(t, NewInputParser().ValidateConfiguration(createValidTestConfiguration()))
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	err := NewInputParser().ValidateConfiguration(&domain.Configuration{})
	assert.EqualError(t, err, "no scenarios provided")
}

func TestValidateConfiguration_DuplicateNames(t *testing.T) {
	config := createValidTestConfiguration()
	config.Scenarios = append(config.Scenarios, config.Scenarios[0])
	err := NewInputParser().ValidateConfiguration(config)
	assert.ErrorContains(t, err, "duplicate scenario name")
}

func TestValidateScenario_Errors(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	zero := decimal.Zero
	tooManyYears := decimal.NewFromInt(MaxHorizonPeriods/12 + 1)
	hugeYears := decimal.New(1, 18)

	tests := []struct {
		name   string
		mutate func(*domain.Scenario)
		want   string
	}{
		{"missing name", func(s *domain.Scenario) { s.Name = "" }, "scenario name is required"},
		{"negative initial", func(s *domain.Scenario) { s.InitialBalance = negative }, "initial balance cannot be negative"},
		{"negative contribution", func(s *domain.Scenario) { s.PeriodicContribution = negative }, "periodic contribution cannot be negative"},
		{"negative rate", func(s *domain.Scenario) { s.RatePercent = negative }, "rate percent cannot be negative"},
		{"unknown basis", func(s *domain.Scenario) { s.RateBasis = "weekly" }, "rate basis"},
		{"negative inflation", func(s *domain.Scenario) { s.InflationPercent = negative }, "inflation percent cannot be negative"},
		{"negative yield", func(s *domain.Scenario) { s.PassiveYieldPercent = negative }, "passive yield percent cannot be negative"},
		{"negative frequency", func(s *domain.Scenario) { s.ContributionFrequency = -2 }, "contribution frequency cannot be negative"},
		{"negative periods", func(s *domain.Scenario) { s.HorizonPeriods = -1 }, "horizon periods cannot be negative"},
		{"negative years", func(s *domain.Scenario) { s.HorizonYears = &negative }, "horizon years cannot be negative"},
		{"zero horizon", func(s *domain.Scenario) { s.HorizonYears = &zero }, "at least one month"},
		{"no horizon", func(s *domain.Scenario) { s.HorizonYears = nil }, "at least one month"},
		{"horizon too long", func(s *domain.Scenario) { s.HorizonPeriods = MaxHorizonPeriods + 1 }, "exceeds the maximum"},
		{"horizon years too long", func(s *domain.Scenario) { s.HorizonYears = &tooManyYears }, "exceeds the maximum"},
		{"horizon years overflow", func(s *domain.Scenario) { s.HorizonYears = &hugeYears }, "exceeds the maximum"},
		{"goal target negative", func(s *domain.Scenario) { s.Goal.Target = negative }, "target must be positive"},
		{"goal target zero", func(s *domain.Scenario) { s.Goal.Target = zero }, "target must be positive"},
		{"goal bad mode", func(s *domain.Scenario) { s.Goal.Mode = "years" }, "mode must be"},
		{"goal bad bound", func(s *domain.Scenario) { s.Goal.MaxPeriods = -5 }, "max periods"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidTestConfiguration()
			tt.mutate(&config.Scenarios[0])
			err := NewInputParser().ValidateConfiguration(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateScenario_HalfMonthRoundsToZero(t *testing.T) {
	tiny := decimal.NewFromFloat(0.04) // 0.48 months
	config := createValidTestConfiguration()
	config.Scenarios[0].HorizonYears = &tiny
	assert.ErrorContains(t, NewInputParser().ValidateConfiguration(config), "at least one month")
}

func TestValidateScenario_HorizonYearsAtMaximum(t *testing.T) {
	years := decimal.NewFromInt(MaxHorizonPeriods / 12)
	config := createValidTestConfiguration()
	config.Scenarios[0].HorizonYears = &years
	require.NoError(t, NewInputParser().ValidateConfiguration(config))
	assert.Equal(t, MaxHorizonPeriods, config.Scenarios[0].Horizon())
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(config))
	require.Len(t, config.Scenarios, 2)

	params := config.Scenarios[0].Params()
	assert.Equal(t, 10000.0, params.InitialBalance)
	assert.Equal(t, 60, params.HorizonPeriods)
	assert.Equal(t, 3.0, params.InflationAnnualPercent)
}

func TestExampleConfiguration_YAMLRoundTrip(t *testing.T) {
	parser := NewInputParser()
	data, err := yaml.Marshal(parser.CreateExampleConfiguration())
	require.NoError(t, err)

	loaded, err := parser.Load(data)
	require.NoError(t, err)
	require.Len(t, loaded.Scenarios, 2)
	assert.Equal(t, 60, loaded.Scenarios[0].Horizon())
	assert.Equal(t, 240, loaded.Scenarios[1].Horizon())
	assert.Equal(t, 3, loaded.Scenarios[1].ContributionFrequency)
	assert.Equal(t, domain.GoalModePeriods, loaded.Scenarios[1].Goal.Mode)
}
