package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_FiveYearScenario(t *testing.T) {
	rate := PerPeriodRate(0.12, domain.RateBasisAnnual)
	assert.InDelta(t, 0.0094888, rate, 1e-7)

	result := Simulate(1000, 500, rate, 60, 1, 0)
	require.Len(t, result.Points, 60)

	// direct recurrence
	balance := 1000.0
	for m := 1; m <= 60; m++ {
		balance = balance*(1+rate) + 500
	}
	assert.InDelta(t, balance, result.FinalBalance, 1e-9)
	assert.Equal(t, 31000.0, result.FinalContributed)
	assert.Equal(t, result.FinalBalance-result.FinalContributed, result.FinalInterest)

	// no inflation: real series equals nominal
	assert.Equal(t, result.FinalBalance, result.FinalRealBalance)
	assert.Equal(t, result.FinalContributed, result.FinalRealContributed)
}

func TestSimulate_PointInvariants(t *testing.T) {
	inflation := PerPeriodRate(0.03, domain.RateBasisAnnual)
	result := Simulate(2500, 150, PerPeriodRate(0.08, domain.RateBasisAnnual), 120, 2, inflation)

	for i, p := range result.Points {
		assert.Equal(t, i+1, p.Period)
		assert.Equal(t, p.Balance-p.Contributed, p.Interest, "period %d", p.Period)

		deflator := math.Pow(1+inflation, float64(p.Period))
		assert.Equal(t, p.Balance/deflator, p.RealBalance, "period %d", p.Period)
		assert.Equal(t, p.Contributed/deflator, p.RealContributed, "period %d", p.Period)
		assert.Equal(t, p.RealBalance-p.RealContributed, p.RealInterest, "period %d", p.Period)
	}
}

func TestSimulate_BalanceNonDecreasing(t *testing.T) {
	cases := []struct {
		initial, contribution, annualRate float64
		frequency                          int
	}{
		{0, 0, 0, 1},
		{1000, 0, 0.05, 1},
		{0, 200, 0, 3},
		{5000, 250, 0.12, 1},
		{100, 1000, 0.30, 12},
	}
	for _, c := range cases {
		result := Simulate(c.initial, c.contribution, PerPeriodRate(c.annualRate, domain.RateBasisAnnual), 240, c.frequency, 0.002)
		prev := c.initial
		for _, p := range result.Points {
			assert.GreaterOrEqual(t, p.Balance, prev, "case %+v period %d", c, p.Period)
			prev = p.Balance
		}
	}
}

func TestSimulate_ZeroRateIsSumOfContributions(t *testing.T) {
	result := Simulate(100, 50, 0, 12, 3, 0)

	// contributions land at periods 3, 6, 9, 12
	assert.Equal(t, 300.0, result.FinalBalance)
	assert.Equal(t, 300.0, result.FinalContributed)
	assert.Equal(t, 0.0, result.FinalInterest)
	assert.Equal(t, 100.0, result.Points[1].Balance)
	assert.Equal(t, 150.0, result.Points[2].Balance)

	for _, p := range result.Points {
		assert.Equal(t, 100+50*float64(p.Period/3), p.Balance)
	}
}

func TestSimulate_GrowthBeforeContribution(t *testing.T) {
	result := Simulate(0, 100, 0.10, 2, 1, 0)
	// first contribution earns nothing in its own period
	assert.InDelta(t, 100.0, result.Points[0].Balance, 1e-12)
	assert.InDelta(t, 210.0, result.Points[1].Balance, 1e-12)
}

func TestSimulate_Inflation(t *testing.T) {
	inflation := 0.01
	result := Simulate(1000, 0, 0.01, 12, 1, inflation)
	// equal growth and inflation keep purchasing power flat
	for _, p := range result.Points {
		assert.InDelta(t, 1000.0, p.RealBalance, 1e-9)
		assert.InDelta(t, 0.0, p.RealInterest+p.RealContributed-1000, 1e-9)
	}
	assert.Greater(t, result.FinalBalance, 1000.0)
}

func TestSimulate_EmptyHorizon(t *testing.T) {
	result := Simulate(750, 100, 0.01, 0, 1, 0)
	assert.Empty(t, result.Points)
	assert.Equal(t, 750.0, result.FinalBalance)
	assert.Equal(t, 750.0, result.FinalContributed)
	assert.Equal(t, 0.0, result.FinalInterest)
}

func TestSimulate_FreshResultEachCall(t *testing.T) {
	a := Simulate(100, 10, 0.01, 5, 1, 0)
	b := Simulate(100, 10, 0.01, 5, 1, 0)
	a.Points[0].Balance = -1
	assert.NotEqual(t, a.Points[0].Balance, b.Points[0].Balance)
}

func TestProject(t *testing.T) {
	params := domain.ProjectionParams{
		InitialBalance:         10000,
		PeriodicContribution:   500,
		RatePercent:            12,
		RateBasis:              domain.RateBasisAnnual,
		HorizonPeriods:         60,
		InflationAnnualPercent: 3,
	}
	result := Project(params)
	direct := Simulate(10000, 500, PerPeriodRate(0.12, domain.RateBasisAnnual), 60, 1, PerPeriodRate(0.03, domain.RateBasisAnnual))

	assert.Equal(t, direct.FinalBalance, result.FinalBalance)
	assert.Equal(t, direct.FinalRealBalance, result.FinalRealBalance)
	assert.Equal(t, 40000.0, result.FinalContributed)
	assert.Less(t, result.FinalRealBalance, result.FinalBalance)
}

func TestProject_PerPeriodBasis(t *testing.T) {
	params := domain.ProjectionParams{
		InitialBalance: 1000,
		RatePercent:    1,
		RateBasis:      domain.RateBasisPerPeriod,
		HorizonPeriods: 12,
	}
	result := Project(params)
	assert.InDelta(t, 1000*math.Pow(1.01, 12), result.FinalBalance, 1e-9)
}

func TestAnnualSnapshots(t *testing.T) {
	result := Simulate(0, 10, 0, 30, 1, 0)
	snaps := AnnualSnapshots(result)
	require.Len(t, snaps, 3)
	assert.Equal(t, 12, snaps[0].Period)
	assert.Equal(t, 24, snaps[1].Period)
	assert.Equal(t, 30, snaps[2].Period)

	whole := AnnualSnapshots(Simulate(0, 10, 0, 24, 1, 0))
	require.Len(t, whole, 2)
	assert.Equal(t, 24, whole[1].Period)

	assert.Nil(t, AnnualSnapshots(nil))
	assert.Nil(t, AnnualSnapshots(Simulate(0, 0, 0, 0, 1, 0)))
}
