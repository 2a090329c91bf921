package main

import (
	"fmt"
	"os"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
)

// print_rates shows the per-period rates each scenario resolves to and both
// flavours of the required contribution, to check goal answers by hand.
func main() {
	p := config.NewInputParser()
	cfg := p.CreateExampleConfiguration()
	if len(os.Args) > 1 {
		var err error
		if cfg, err = p.LoadFromFile(os.Args[1]); err != nil {
			panic(err)
		}
	}

	for _, sc := range cfg.Scenarios {
		params := sc.Params()
		rate := calculation.PerPeriodRate(calculation.PercentToFraction(params.RatePercent), params.RateBasis)
		infl := calculation.PerPeriodRate(calculation.PercentToFraction(params.InflationAnnualPercent), domain.RateBasisAnnual)
		fmt.Printf("%s\n", sc.Name)
		fmt.Printf("  periods=%d frequency=%d\n", params.HorizonPeriods, params.Frequency())
		fmt.Printf("  rate/period=%.10f inflation/period=%.10f real=%.10f\n", rate, infl, calculation.RealRate(rate, infl))

		if sc.Goal == nil {
			continue
		}
		target := sc.Goal.Target.InexactFloat64()
		fmt.Printf("  nominal PMT=%.4f raw=%.4f\n",
			calculation.RequiredContribution(target, params.InitialBalance, rate, params.HorizonPeriods),
			calculation.RawRequiredContribution(target, params.InitialBalance, rate, params.HorizonPeriods))
		fmt.Printf("  real PMT=%.4f\n",
			calculation.RequiredContributionReal(target, params.InitialBalance, rate, infl, params.HorizonPeriods))
		fmt.Printf("  periods (every period)=%d\n",
			calculation.PeriodsToTarget(target, params.InitialBalance, params.PeriodicContribution, rate, sc.Goal.MaxPeriods))
	}
}
