package calculation

import (
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// Simulate runs the month-by-month projection. Growth is applied before the
// contribution in each period, and a contribution lands on every period m with
// m % contributionFrequency == 0. Real-terms fields are deflated by
// (1+perPeriodInflation)^m. The result is freshly allocated on every call.
func Simulate(initialBalance, periodicContribution, perPeriodRate float64, periods, contributionFrequency int, perPeriodInflation float64) *domain.ProjectionResult {
	if contributionFrequency < 1 {
		contributionFrequency = 1
	}
	if periods < 0 {
		periods = 0
	}

	balance := initialBalance
	contributed := initialBalance
	points := make([]domain.ProjectionPoint, 0, periods)

	for m := 1; m <= periods; m++ {
		balance *= 1 + perPeriodRate
		if m%contributionFrequency == 0 {
			balance += periodicContribution
			contributed += periodicContribution
		}

		deflator := math.Pow(1+perPeriodInflation, float64(m))
		realBalance := balance / deflator
		realContributed := contributed / deflator

		points = append(points, domain.ProjectionPoint{
			Period:          m,
			Balance:         balance,
			Contributed:     contributed,
			Interest:        balance - contributed,
			RealBalance:     realBalance,
			RealContributed: realContributed,
			RealInterest:    realBalance - realContributed,
		})
	}

	result := &domain.ProjectionResult{
		FinalBalance:         initialBalance,
		FinalContributed:     initialBalance,
		FinalRealBalance:     initialBalance,
		FinalRealContributed: initialBalance,
		Points:               points,
	}
	if n := len(points); n > 0 {
		last := points[n-1]
		result.FinalBalance = last.Balance
		result.FinalContributed = last.Contributed
		result.FinalInterest = last.Interest
		result.FinalRealBalance = last.RealBalance
		result.FinalRealContributed = last.RealContributed
		result.FinalRealInterest = last.RealInterest
	}
	return result
}

// Project normalizes the rates in p and runs Simulate over the full horizon.
func Project(p domain.ProjectionParams) *domain.ProjectionResult {
	rate, inflation := normalizedRates(p)
	return Simulate(p.InitialBalance, p.PeriodicContribution, rate, p.HorizonPeriods, p.Frequency(), inflation)
}

// AnnualSnapshots returns the point closing each year of the projection, plus the
// final point when the horizon is not a whole number of years.
func AnnualSnapshots(result *domain.ProjectionResult) []domain.ProjectionPoint {
	if result == nil || len(result.Points) == 0 {
		return nil
	}
	snapshots := make([]domain.ProjectionPoint, 0, len(result.Points)/domain.PeriodsPerYear+1)
	for _, p := range result.Points {
		if p.Period%domain.PeriodsPerYear == 0 {
			snapshots = append(snapshots, p)
		}
	}
	last := result.Points[len(result.Points)-1]
	if last.Period%domain.PeriodsPerYear != 0 {
		snapshots = append(snapshots, last)
	}
	return snapshots
}
