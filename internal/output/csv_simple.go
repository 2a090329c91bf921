package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Periods", "FinalBalance", "FinalContributed", "FinalInterest", "FinalRealBalance", "FinalRealContributed", "FinalRealInterest", "PassiveMonthly", "PassiveAnnual", "GoalMode", "GoalTarget", "RequiredContribution", "PeriodsToGoal", "GoalReachable", "GoalAlreadyMet"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		r := sc.Projection
		if r == nil {
			r = &domain.ProjectionResult{}
		}
		row := []string{
			sc.Name,
			intToString(r.Periods()),
			FormatAmount(r.FinalBalance),
			FormatAmount(r.FinalContributed),
			FormatAmount(r.FinalInterest),
			FormatAmount(r.FinalRealBalance),
			FormatAmount(r.FinalRealContributed),
			FormatAmount(r.FinalRealInterest),
			FormatAmount(sc.PassiveIncome.Monthly),
			FormatAmount(sc.PassiveIncome.Annual),
		}
		row = append(row, goalColumns(sc.Goal)...)
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func goalColumns(g *domain.GoalResult) []string {
	if g == nil {
		return []string{"", "", "", "", "", ""}
	}
	required, periods := "", ""
	if g.Query.Mode == domain.GoalModePeriods {
		periods = intToString(g.Periods)
	} else {
		required = FormatAmount(g.RequiredContribution)
	}
	return []string{
		string(g.Query.Mode),
		FormatAmount(g.Query.Target),
		required,
		periods,
		boolToString(g.Reachable),
		boolToString(g.AlreadyMet),
	}
}
