package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// ConsoleFormatter renders the per-scenario summary shown by default on the terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COMPOUND GROWTH PROJECTION")
	fmt.Fprintln(&buf, "==========================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results.Assumptions) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}

	for _, sc := range results.Scenarios {
		p := sc.Params
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, sc.Name)
		fmt.Fprintf(&buf, "  Initial %s, contributing %s every %d month(s), %s %s, inflation %s/yr, %d months\n",
			FormatCurrency(p.InitialBalance), FormatCurrency(p.PeriodicContribution), p.Frequency(),
			FormatPercentage(p.RatePercent), rateBasisLabel(p.RateBasis),
			FormatPercentage(p.InflationAnnualPercent), p.HorizonPeriods)
		if sc.Projection == nil {
			continue
		}
		r := sc.Projection
		fmt.Fprintf(&buf, "  Final balance:    %-18s real %s\n", FormatCurrency(r.FinalBalance), FormatCurrency(r.FinalRealBalance))
		fmt.Fprintf(&buf, "  Total invested:   %-18s real %s\n", FormatCurrency(r.FinalContributed), FormatCurrency(r.FinalRealContributed))
		fmt.Fprintf(&buf, "  Total interest:   %-18s real %s\n", FormatCurrency(r.FinalInterest), FormatCurrency(r.FinalRealInterest))
		if sc.PassiveIncome.Monthly > 0 {
			fmt.Fprintf(&buf, "  Passive income:   %s/month, %s/year at %s a month\n",
				FormatCurrency(sc.PassiveIncome.Monthly), FormatCurrency(sc.PassiveIncome.Annual), FormatPercentage(sc.PassiveIncome.YieldPercent))
		}
		if msg := GoalMessage(sc); msg != "" {
			fmt.Fprintf(&buf, "  %s\n", msg)
		}
	}

	if len(results.Scenarios) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Highest real balance: %s (%s, %s ahead of %s)\n",
			rec.ScenarioName, FormatCurrency(rec.FinalRealBalance), FormatCurrency(rec.Advantage), rec.RunnerUp)
		if msg := crossoverMessage(results); msg != "" {
			fmt.Fprintln(&buf, msg)
		}
	}
	return buf.Bytes(), nil
}

func rateBasisLabel(b domain.RateBasis) string {
	if b == domain.RateBasisPerPeriod {
		return "a month"
	}
	return "a year"
}
