package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	calc "github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report with a year-end table and a
// balance versus contributed chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"pct":     FormatPercentage,
	"periods": FormatPeriods,
	"goal":    GoalMessage,
	"label":   dateutil.PeriodLabel,
	"annual":  calc.AnnualSnapshots,
}).Parse(htmlTemplateSource))

const (
	chartWidth  = 600.0
	chartHeight = 240.0
)

// chart holds SVG polyline coordinates for one scenario.
type chart struct {
	Width       float64
	Height      float64
	Balance     string
	Contributed string
	Max         float64
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	type scenarioView struct {
		domain.ScenarioSummary
		Chart chart
	}
	views := make([]scenarioView, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		views = append(views, scenarioView{ScenarioSummary: sc, Chart: buildChart(sc.Projection)})
	}

	var rec *Recommendation
	if len(results.Scenarios) > 1 {
		r := AnalyzeScenarios(results)
		rec = &r
	}

	data := struct {
		GeneratedAt    string
		Assumptions    []string
		Scenarios      []scenarioView
		Recommendation *Recommendation
		Crossover      string
	}{
		Assumptions:    assumptionsFor(results.Assumptions),
		Scenarios:      views,
		Recommendation: rec,
		Crossover:      crossoverMessage(results),
	}
	if !results.GeneratedAt.IsZero() {
		data.GeneratedAt = results.GeneratedAt.Format("2006-01-02 15:04")
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildChart scales the nominal balance and contributed series into the chart box.
// Period 0 starts at the left edge.
func buildChart(res *domain.ProjectionResult) chart {
	c := chart{Width: chartWidth, Height: chartHeight}
	if res == nil || len(res.Points) == 0 {
		return c
	}
	for _, p := range res.Points {
		if p.Balance > c.Max {
			c.Max = p.Balance
		}
		if p.Contributed > c.Max {
			c.Max = p.Contributed
		}
	}
	if c.Max <= 0 {
		return c
	}
	n := float64(len(res.Points))
	var bal, con strings.Builder
	for i, p := range res.Points {
		x := float64(i+1) / n * chartWidth
		if i > 0 {
			bal.WriteByte(' ')
			con.WriteByte(' ')
		}
		fmt.Fprintf(&bal, "%.1f,%.1f", x, chartHeight-p.Balance/c.Max*chartHeight)
		fmt.Fprintf(&con, "%.1f,%.1f", x, chartHeight-p.Contributed/c.Max*chartHeight)
	}
	c.Balance = bal.String()
	c.Contributed = con.String()
	return c
}
