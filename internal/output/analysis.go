package output

import (
	"fmt"
	"sort"
	"strings"

	calc "github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FinalRealBalance float64
	RunnerUp         string
	Advantage        float64 // real-terms lead over the runner-up
}

// AnalyzeScenarios picks the scenario with the highest final balance in today's money.
// Ties are broken by name so output is deterministic.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	type ranked struct {
		name  string
		value money.Money
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		if sc.Projection == nil {
			continue
		}
		ranks = append(ranks, ranked{sc.Name, money.NewMoney(sc.Projection.FinalRealBalance).Round()})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	// compared in cents so float noise below a cent cannot pick the winner
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].value.Equal(ranks[j].value) {
			return ranks[i].name < ranks[j].name
		}
		return ranks[j].value.LessThan(ranks[i].value)
	})
	rec := Recommendation{ScenarioName: ranks[0].name, FinalRealBalance: ranks[0].value.Float64()}
	if len(ranks) > 1 {
		rec.RunnerUp = ranks[1].name
		rec.Advantage = ranks[0].value.Sub(ranks[1].value).Float64()
	}
	return rec
}

// GoalMessage describes a scenario's goal outcome in one line. Empty when the scenario has no goal.
func GoalMessage(sc domain.ScenarioSummary) string {
	g := sc.Goal
	if g == nil {
		return ""
	}
	target := FormatCurrency(g.Query.Target)

	if g.Query.Mode == domain.GoalModePeriods {
		switch {
		case g.AlreadyMet:
			return fmt.Sprintf("Goal of %s already achieved.", target)
		case !g.Reachable:
			return fmt.Sprintf("Goal of %s is unreachable within %d months at the current contribution.", target, maxPeriods(g.Query.MaxPeriods))
		}
		msg := fmt.Sprintf("Goal of %s reached after %s", target, FormatPeriods(g.Periods))
		if sc.StartDate != nil {
			msg += ", in " + dateutil.PeriodLabel(sc.StartDate, g.Periods)
		}
		return msg + "."
	}

	if g.AlreadyMet {
		return fmt.Sprintf("Goal of %s already achieved with the current parameters.", target)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Goal of %s", target)
	if g.Query.AdjustForInflation {
		b.WriteString(" (today's money)")
	}
	fmt.Fprintf(&b, " needs %s/month or %s/year", FormatCurrency(g.RequiredContribution), FormatCurrency(g.AnnualContribution))
	if freq := sc.Params.Frequency(); freq > 1 {
		fmt.Fprintf(&b, " (%s every %d months)", FormatCurrency(g.PerOccurrence), freq)
	}
	b.WriteString(".")
	return b.String()
}

// crossoverMessage compares the first two scenarios, if there are two.
func crossoverMessage(results *domain.ScenarioComparison) string {
	if len(results.Scenarios) < 2 {
		return ""
	}
	a, b := results.Scenarios[0], results.Scenarios[1]
	if a.Projection == nil || b.Projection == nil {
		return ""
	}
	cross, err := calc.FindBalanceCrossover(a.Projection.Points, b.Projection.Points)
	if err != nil || cross == nil {
		return ""
	}
	leader, other := a.Name, b.Name
	if cross.Leader == "b" {
		leader, other = b.Name, a.Name
	}
	return fmt.Sprintf("%s overtakes %s in period %d at about %s.", leader, other, cross.Period, FormatCurrency(cross.Balance))
}

func maxPeriods(n int) int {
	if n <= 0 {
		return domain.DefaultMaxPeriods
	}
	return n
}
