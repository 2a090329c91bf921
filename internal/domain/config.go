package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpgo/growth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the top level of an input file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario is one set of savings parameters as written in the input file.
type Scenario struct {
	Name                  string           `yaml:"name" json:"name"`
	InitialBalance        decimal.Decimal  `yaml:"initial_balance" json:"initial_balance"`
	PeriodicContribution  decimal.Decimal  `yaml:"periodic_contribution" json:"periodic_contribution"`
	RatePercent           decimal.Decimal  `yaml:"rate_percent" json:"rate_percent"`
	RateBasis             RateBasis        `yaml:"rate_basis,omitempty" json:"rate_basis,omitempty"`
	HorizonYears          *decimal.Decimal `yaml:"horizon_years,omitempty" json:"horizon_years,omitempty"`
	HorizonPeriods        int              `yaml:"horizon_periods,omitempty" json:"horizon_periods,omitempty"`
	ContributionFrequency int              `yaml:"contribution_frequency,omitempty" json:"contribution_frequency,omitempty"`
	InflationPercent      decimal.Decimal  `yaml:"inflation_percent" json:"inflation_percent"`
	PassiveYieldPercent   decimal.Decimal  `yaml:"passive_yield_percent" json:"passive_yield_percent"` // percent per month
	StartDate             *time.Time       `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	Goal                  *GoalSpec        `yaml:"goal,omitempty" json:"goal,omitempty"`
}

// GoalSpec is the optional savings goal of a scenario.
type GoalSpec struct {
	Target             decimal.Decimal `yaml:"target" json:"target"`
	Mode               GoalMode        `yaml:"mode" json:"mode"`
	AdjustForInflation bool            `yaml:"adjust_for_inflation" json:"adjust_for_inflation"`
	MaxPeriods         int             `yaml:"max_periods,omitempty" json:"max_periods,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Scenario
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Name                  string          `yaml:"name"`
		InitialBalance        decimal.Decimal `yaml:"initial_balance"`
		PeriodicContribution  decimal.Decimal `yaml:"periodic_contribution"`
		RatePercent           decimal.Decimal `yaml:"rate_percent"`
		RateBasis             string          `yaml:"rate_basis,omitempty"`
		HorizonYears          *string         `yaml:"horizon_years,omitempty"`
		HorizonPeriods        int             `yaml:"horizon_periods,omitempty"`
		ContributionFrequency int             `yaml:"contribution_frequency,omitempty"`
		InflationPercent      decimal.Decimal `yaml:"inflation_percent"`
		PassiveYieldPercent   decimal.Decimal `yaml:"passive_yield_percent"`
		StartDate             *time.Time      `yaml:"start_date,omitempty"`
		Goal                  *GoalSpec       `yaml:"goal,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	s.Name = aux.Name
	s.InitialBalance = aux.InitialBalance
	s.PeriodicContribution = aux.PeriodicContribution
	s.RatePercent = aux.RatePercent
	s.RateBasis = RateBasis(strings.ToLower(strings.TrimSpace(aux.RateBasis)))
	s.HorizonPeriods = aux.HorizonPeriods
	s.ContributionFrequency = aux.ContributionFrequency
	s.InflationPercent = aux.InflationPercent
	s.PassiveYieldPercent = aux.PassiveYieldPercent
	s.StartDate = aux.StartDate
	s.Goal = aux.Goal
	if s.Goal != nil {
		s.Goal.Mode = GoalMode(strings.ToLower(strings.TrimSpace(string(s.Goal.Mode))))
	}

	if aux.HorizonYears != nil {
		val, err := decimal.NewFromString(*aux.HorizonYears)
		if err != nil {
			return err
		}
		s.HorizonYears = &val
	}

	return nil
}

// Horizon returns the number of monthly periods the scenario covers. An explicit
// period count wins over a horizon in years.
func (s *Scenario) Horizon() int {
	if s.HorizonPeriods > 0 {
		return s.HorizonPeriods
	}
	if s.HorizonYears != nil {
		return dateutil.MonthsFromYears(s.HorizonYears.InexactFloat64())
	}
	return 0
}

// Params converts the scenario into engine parameters.
func (s *Scenario) Params() ProjectionParams {
	basis := s.RateBasis
	if basis == "" {
		basis = RateBasisAnnual
	}
	return ProjectionParams{
		InitialBalance:         s.InitialBalance.InexactFloat64(),
		PeriodicContribution:   s.PeriodicContribution.InexactFloat64(),
		RatePercent:            s.RatePercent.InexactFloat64(),
		RateBasis:              basis,
		HorizonPeriods:         s.Horizon(),
		ContributionFrequency:  s.ContributionFrequency,
		InflationAnnualPercent: s.InflationPercent.InexactFloat64(),
	}
}

// Query converts the goal into a solver query. Returns nil when no goal is set.
func (g *GoalSpec) Query() *GoalQuery {
	if g == nil {
		return nil
	}
	mode := g.Mode
	if mode == "" {
		mode = GoalModeContribution
	}
	return &GoalQuery{
		Target:             g.Target.InexactFloat64(),
		Mode:               mode,
		AdjustForInflation: g.AdjustForInflation,
		MaxPeriods:         g.MaxPeriods,
	}
}

// GenerateAssumptions lists the modeling assumptions behind a run of this configuration
func (c *Configuration) GenerateAssumptions() []string {
	assumptions := []string{
		"Periods are months; annual rates are converted geometrically: i = (1 + r)^(1/12) - 1",
		"Growth is applied before each period's contribution (ordinary annuity)",
		"Real values are deflated by cumulative monthly inflation from period zero",
		fmt.Sprintf("Time-to-goal searches stop after %d periods unless a scenario sets max_periods", DefaultMaxPeriods),
	}
	for _, sc := range c.Scenarios {
		if sc.Goal != nil && sc.Goal.AdjustForInflation && sc.Goal.Mode != GoalModePeriods {
			assumptions = append(assumptions, "Inflation-adjusted goals are stated in today's money and solved at the real rate (1+i)/(1+inflation) - 1")
			break
		}
	}
	return assumptions
}
