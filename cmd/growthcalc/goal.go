package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
)

type goalOptions struct {
	name         string
	initial      string
	contribution string
	rate         float64
	basis        string
	years        float64
	periods      int
	frequency    int
	inflation    float64
	passiveYield float64
	target       string
	mode         string
	inToday      bool
	maxPeriods   int
}

func newGoalCmd(a *app) *cobra.Command {
	opts := goalOptions{}
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Solve a savings goal for one scenario given on the command line",
		Long: `Projects a single scenario described by flags and solves for either the monthly
contribution that reaches --target by the end of the horizon (--mode contribution)
or the number of months the current contribution needs (--mode periods).`,
		Example: `  growthcalc goal --initial 10000 --contribution 500 --rate 12 --years 5 --inflation 3 --target 500000 --real
  growthcalc goal --initial 10000 --contribution 1500 --frequency 3 --rate 8 --years 20 --target 500000 --mode periods`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := opts.scenario()
			if err != nil {
				return fmt.Errorf("invalid scenario: %w", err)
			}
			if err := config.NewInputParser().ValidateScenario(&scenario); err != nil {
				return fmt.Errorf("invalid scenario: %w", err)
			}

			summary, err := a.engine().RunScenario(cmd.Context(), &scenario)
			if err != nil {
				return err
			}

			results := &domain.ScenarioComparison{
				Scenarios:   []domain.ScenarioSummary{*summary},
				Assumptions: (&domain.Configuration{Scenarios: []domain.Scenario{scenario}}).GenerateAssumptions(),
			}
			return a.emit(cmd, results)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "Goal", "scenario name")
	f.StringVar(&opts.initial, "initial", "0", "initial balance")
	f.StringVar(&opts.contribution, "contribution", "0", "contribution per occurrence")
	f.Float64Var(&opts.rate, "rate", 0, "interest rate in percent")
	f.StringVar(&opts.basis, "basis", string(domain.RateBasisAnnual), "rate basis: annual or per_period")
	f.Float64Var(&opts.years, "years", 0, "horizon in years (rounded to whole months)")
	f.IntVar(&opts.periods, "periods", 0, "horizon in months, overrides --years")
	f.IntVar(&opts.frequency, "frequency", 1, "contribute every N months")
	f.Float64Var(&opts.inflation, "inflation", 0, "annual inflation in percent")
	f.Float64Var(&opts.passiveYield, "passive-yield", 0, "monthly yield in percent used for passive income")
	f.StringVar(&opts.target, "target", "", "target balance")
	f.StringVar(&opts.mode, "mode", string(domain.GoalModeContribution), "solve for: contribution or periods")
	f.BoolVar(&opts.inToday, "real", false, "state the target in today's money (contribution mode)")
	f.IntVar(&opts.maxPeriods, "goal-max-periods", 0, "bound for the periods search, overrides --max-periods")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// scenario builds the scenario from flags. Amounts are parsed as exact decimals.
func (o goalOptions) scenario() (domain.Scenario, error) {
	var initial, contribution, target money.Money
	for _, a := range []struct {
		flag string
		raw  string
		dst  *money.Money
	}{
		{"initial", o.initial, &initial},
		{"contribution", o.contribution, &contribution},
		{"target", o.target, &target},
	} {
		m, err := money.NewMoneyFromString(strings.TrimSpace(a.raw))
		if err != nil {
			return domain.Scenario{}, fmt.Errorf("--%s: %q is not an amount", a.flag, a.raw)
		}
		*a.dst = m
	}

	sc := domain.Scenario{
		Name:                  o.name,
		InitialBalance:        initial.Decimal,
		PeriodicContribution:  contribution.Decimal,
		RatePercent:           decimal.NewFromFloat(o.rate),
		RateBasis:             domain.RateBasis(strings.ToLower(strings.TrimSpace(o.basis))),
		HorizonPeriods:        o.periods,
		ContributionFrequency: o.frequency,
		InflationPercent:      decimal.NewFromFloat(o.inflation),
		PassiveYieldPercent:   decimal.NewFromFloat(o.passiveYield),
		Goal: &domain.GoalSpec{
			Target:             target.Decimal,
			Mode:               domain.GoalMode(strings.ToLower(strings.TrimSpace(o.mode))),
			AdjustForInflation: o.inToday,
			MaxPeriods:         o.maxPeriods,
		},
	}
	if o.years != 0 {
		years := decimal.NewFromFloat(o.years)
		sc.HorizonYears = &years
	}
	return sc, nil
}
