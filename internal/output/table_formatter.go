package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	calc "github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
)

// TableFormatter renders the period-by-period evolution of every scenario.
// Real switches the columns to today's money; Annual keeps only year-end rows.
type TableFormatter struct {
	Real   bool
	Annual bool
}

func (t TableFormatter) Name() string {
	switch {
	case t.Real:
		return "table-real"
	case t.Annual:
		return "table-annual"
	default:
		return "table"
	}
}

func (t TableFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	for i, sc := range results.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		title := sc.Name
		if t.Real {
			title += " (today's money)"
		}
		fmt.Fprintln(&buf, title)

		if sc.Projection == nil {
			continue
		}
		points := sc.Projection.Points
		if t.Annual {
			points = calc.AnnualSnapshots(sc.Projection)
		}

		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Period\tBalance\tContributed\tInterest\t")
		for _, p := range points {
			balance, contributed, interest := p.Balance, p.Contributed, p.Interest
			if t.Real {
				balance, contributed, interest = p.RealBalance, p.RealContributed, p.RealInterest
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
				dateutil.PeriodLabel(sc.StartDate, p.Period),
				FormatCurrency(balance), FormatCurrency(contributed), FormatCurrency(interest))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
