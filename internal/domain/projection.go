package domain

import "time"

// RateBasis says how a stated rate is expressed.
type RateBasis string

const (
	// RateBasisAnnual is an effective annual rate, converted geometrically to a monthly rate.
	RateBasisAnnual RateBasis = "annual"
	// RateBasisPerPeriod is a rate already expressed per period (month).
	RateBasisPerPeriod RateBasis = "per_period"
)

// PeriodsPerYear is the number of projection periods in a year. Periods are months.
const PeriodsPerYear = 12

// ProjectionParams is the validated input of a single projection run.
type ProjectionParams struct {
	InitialBalance         float64   `json:"initial_balance"`
	PeriodicContribution   float64   `json:"periodic_contribution"`
	RatePercent            float64   `json:"rate_percent"`
	RateBasis              RateBasis `json:"rate_basis"`
	HorizonPeriods         int       `json:"horizon_periods"`
	ContributionFrequency  int       `json:"contribution_frequency"` // contribution every Nth period, 0 means 1
	InflationAnnualPercent float64   `json:"inflation_annual_percent"`
}

// Frequency returns the contribution frequency with the zero value defaulted to every period.
func (p ProjectionParams) Frequency() int {
	if p.ContributionFrequency < 1 {
		return 1
	}
	return p.ContributionFrequency
}

// ProjectionPoint is the state of the account at the end of one period.
type ProjectionPoint struct {
	Period          int     `json:"period"`
	Balance         float64 `json:"balance"`
	Contributed     float64 `json:"contributed"`
	Interest        float64 `json:"interest"`
	RealBalance     float64 `json:"real_balance"`
	RealContributed float64 `json:"real_contributed"`
	RealInterest    float64 `json:"real_interest"`
}

// ProjectionResult holds the end-of-horizon totals and the full month-by-month series.
type ProjectionResult struct {
	FinalBalance         float64           `json:"final_balance"`
	FinalContributed     float64           `json:"final_contributed"`
	FinalInterest        float64           `json:"final_interest"`
	FinalRealBalance     float64           `json:"final_real_balance"`
	FinalRealContributed float64           `json:"final_real_contributed"`
	FinalRealInterest    float64           `json:"final_real_interest"`
	Points               []ProjectionPoint `json:"points"`
}

// Periods returns the number of simulated periods.
func (r *ProjectionResult) Periods() int {
	return len(r.Points)
}

// PassiveIncome is the income a balance yields at a fixed monthly rate.
type PassiveIncome struct {
	YieldPercent float64 `json:"yield_percent"` // percent per month
	Monthly      float64 `json:"monthly"`
	Annual       float64 `json:"annual"`
}

// ScenarioSummary is the computed outcome of one configured scenario.
type ScenarioSummary struct {
	Name          string            `json:"name"`
	Params        ProjectionParams  `json:"params"`
	StartDate     *time.Time        `json:"start_date,omitempty"`
	Projection    *ProjectionResult `json:"projection"`
	Goal          *GoalResult       `json:"goal,omitempty"`
	PassiveIncome PassiveIncome     `json:"passive_income"`
}

// ScenarioComparison collects the summaries of every scenario in a configuration.
type ScenarioComparison struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Assumptions []string          `json:"assumptions"`
}
