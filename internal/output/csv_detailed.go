package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
)

// CSVDetailedExporter writes one row per scenario and period.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Period", "Label", "Balance", "Contributed", "Interest", "RealBalance", "RealContributed", "RealInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		if sc.Projection == nil {
			continue
		}
		for _, p := range sc.Projection.Points {
			row := []string{
				sc.Name,
				intToString(p.Period),
				dateutil.PeriodLabel(sc.StartDate, p.Period),
				FormatAmount(p.Balance),
				FormatAmount(p.Contributed),
				FormatAmount(p.Interest),
				FormatAmount(p.RealBalance),
				FormatAmount(p.RealContributed),
				FormatAmount(p.RealInterest),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
