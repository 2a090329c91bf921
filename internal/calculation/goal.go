package calculation

import (
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// RawRequiredContribution inverts the future value of an ordinary annuity:
//
//	PMT = (target - initial*(1+i)^n) * i / ((1+i)^n - 1)
//
// and PMT = (target - initial)/n when i is zero. The result is negative when the
// initial balance alone reaches the target. A horizon under one period leaves the
// whole shortfall to a single contribution.
func RawRequiredContribution(targetValue, initialBalance, perPeriodRate float64, periods int) float64 {
	if periods < 1 {
		return targetValue - initialBalance
	}
	n := float64(periods)
	if perPeriodRate == 0 {
		return (targetValue - initialBalance) / n
	}
	factor := math.Pow(1+perPeriodRate, n)
	return ((targetValue - initialBalance*factor) * perPeriodRate) / (factor - 1)
}

// RequiredContribution is RawRequiredContribution clamped at zero. A zero result
// means no further contribution is needed.
func RequiredContribution(targetValue, initialBalance, perPeriodRate float64, periods int) float64 {
	return math.Max(0, RawRequiredContribution(targetValue, initialBalance, perPeriodRate, periods))
}

// rawRequiredContributionReal inflates the target to end-of-horizon money and solves
// with the real rate. A nominal rate of zero keeps the linear form.
func rawRequiredContributionReal(targetValue, initialBalance, perPeriodRate, perPeriodInflation float64, periods int) float64 {
	adjusted := targetValue * math.Pow(1+perPeriodInflation, float64(periods))
	if perPeriodRate == 0 {
		return RawRequiredContribution(adjusted, initialBalance, 0, periods)
	}
	return RawRequiredContribution(adjusted, initialBalance, RealRate(perPeriodRate, perPeriodInflation), periods)
}

// RequiredContributionReal is the inflation-adjusted variant of RequiredContribution.
// The target is expressed in today's money and inflated forward by
// (1+perPeriodInflation)^periods; the annuity is then solved at the real rate
// (1+i)/(1+infl) - 1. Clamped at zero.
func RequiredContributionReal(targetValue, initialBalance, perPeriodRate, perPeriodInflation float64, periods int) float64 {
	return math.Max(0, rawRequiredContributionReal(targetValue, initialBalance, perPeriodRate, perPeriodInflation, periods))
}

// PeriodsToTarget returns the first period at which the balance reaches targetValue
// when contributing every period, or domain.Unreachable when no period within
// maxPeriods does. maxPeriods <= 0 selects domain.DefaultMaxPeriods.
func PeriodsToTarget(targetValue, initialBalance, periodicContribution, perPeriodRate float64, maxPeriods int) int {
	return periodsToTarget(targetValue, initialBalance, periodicContribution, perPeriodRate, 1, maxPeriods)
}

// periodsToTarget is PeriodsToTarget with the contribution landing every frequency periods,
// matching Simulate.
func periodsToTarget(targetValue, initialBalance, periodicContribution, perPeriodRate float64, frequency, maxPeriods int) int {
	if initialBalance >= targetValue {
		return 0
	}
	if maxPeriods <= 0 {
		maxPeriods = domain.DefaultMaxPeriods
	}
	if frequency < 1 {
		frequency = 1
	}

	if perPeriodRate == 0 {
		if periodicContribution <= 0 {
			return domain.Unreachable
		}
		// bound in float64 so huge ratios cannot overflow int
		periods := math.Ceil((targetValue-initialBalance)/periodicContribution) * float64(frequency)
		if periods > float64(maxPeriods) {
			return domain.Unreachable
		}
		return int(periods)
	}

	// balance is non-decreasing in m for non-negative rate and contribution, so the
	// first hit is the answer.
	balance := initialBalance
	for m := 1; m <= maxPeriods; m++ {
		balance *= 1 + perPeriodRate
		if m%frequency == 0 {
			balance += periodicContribution
		}
		if balance >= targetValue {
			return m
		}
	}
	return domain.Unreachable
}

// SolveGoal answers query under the same normalized rates Project uses for params.
// Contribution results are per period; PerOccurrence scales them to the scenario's
// contribution frequency. Periods mode applies the scenario contribution on the
// same schedule as Project.
func SolveGoal(params domain.ProjectionParams, query domain.GoalQuery) domain.GoalResult {
	rate, inflation := normalizedRates(params)
	result := domain.GoalResult{Query: query, Periods: domain.Unreachable}

	switch query.Mode {
	case domain.GoalModePeriods:
		result.Periods = periodsToTarget(query.Target, params.InitialBalance, params.PeriodicContribution, rate, params.Frequency(), query.MaxPeriods)
		result.Reachable = result.Periods != domain.Unreachable
		result.AlreadyMet = result.Periods == 0
	default:
		var raw float64
		if query.AdjustForInflation {
			raw = rawRequiredContributionReal(query.Target, params.InitialBalance, rate, inflation, params.HorizonPeriods)
		} else {
			raw = RawRequiredContribution(query.Target, params.InitialBalance, rate, params.HorizonPeriods)
		}
		pmt := math.Max(0, raw)
		result.RequiredContribution = pmt
		result.PerOccurrence = pmt * float64(params.Frequency())
		result.AnnualContribution = pmt * domain.PeriodsPerYear
		result.Reachable = true
		result.AlreadyMet = params.InitialBalance >= query.Target || raw <= 0
	}
	return result
}
