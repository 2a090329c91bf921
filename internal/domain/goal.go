package domain

// GoalMode selects which inverse problem the goal solver answers.
type GoalMode string

const (
	// GoalModeContribution solves for the level contribution that reaches the target within the horizon.
	GoalModeContribution GoalMode = "contribution"
	// GoalModePeriods solves for the number of periods needed with the current contribution.
	GoalModePeriods GoalMode = "periods"
)

// Unreachable is returned by the time-to-target solver when no period within the
// search bound reaches the target.
const Unreachable = -1

// DefaultMaxPeriods bounds the time-to-target search (100 years of months).
const DefaultMaxPeriods = 1200

// GoalQuery describes a target value and what to solve for.
type GoalQuery struct {
	Target float64  `json:"target"`
	Mode   GoalMode `json:"mode"`

	// AdjustForInflation inflates the target to horizon-end money and solves with the
	// real rate. Only used in contribution mode.
	AdjustForInflation bool `json:"adjust_for_inflation"`
	MaxPeriods         int  `json:"max_periods,omitempty"`
}

// GoalResult is the answer to a GoalQuery.
type GoalResult struct {
	Query GoalQuery `json:"query"`

	// Contribution mode. RequiredContribution is per period (month) and never negative.
	RequiredContribution float64 `json:"required_contribution"`
	PerOccurrence        float64 `json:"per_occurrence"` // RequiredContribution * contribution frequency
	AnnualContribution   float64 `json:"annual_contribution"`

	// Periods mode. Periods is Unreachable when Reachable is false.
	Periods int `json:"periods"`

	Reachable  bool `json:"reachable"`
	AlreadyMet bool `json:"already_met"`
}
