package calculation

import (
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// PercentToFraction converts a percentage (12) to a decimal fraction (0.12).
func PercentToFraction(pct float64) float64 {
	return pct / 100
}

// PerPeriodRate converts a rate fraction to the equivalent monthly rate. Annual rates
// are converted geometrically, i = (1+r)^(1/12) - 1; per-period rates pass through.
// Inputs are not validated.
func PerPeriodRate(rate float64, basis domain.RateBasis) float64 {
	if basis == domain.RateBasisPerPeriod {
		return rate
	}
	if rate == 0 {
		return 0
	}
	return math.Pow(1+rate, 1.0/domain.PeriodsPerYear) - 1
}

// RealRate is the per-period growth rate net of inflation, (1+i)/(1+infl) - 1.
func RealRate(perPeriodRate, perPeriodInflation float64) float64 {
	return (1+perPeriodRate)/(1+perPeriodInflation) - 1
}

// normalizedRates returns the monthly growth and inflation rates for params.
func normalizedRates(p domain.ProjectionParams) (rate, inflation float64) {
	rate = PerPeriodRate(PercentToFraction(p.RatePercent), p.RateBasis)
	inflation = PerPeriodRate(PercentToFraction(p.InflationAnnualPercent), domain.RateBasisAnnual)
	return rate, inflation
}
