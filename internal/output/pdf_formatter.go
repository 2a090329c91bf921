package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	calc "github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders a printable report: assumptions, one summary box per scenario
// and a year-end table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	if !results.GeneratedAt.IsZero() {
		// fixed creation date keeps output reproducible
		pdf.SetCreationDate(results.GeneratedAt)
	}

	r := &pdfReport{pdf: pdf}
	r.addTitlePage(results)
	for _, sc := range results.Scenarios {
		r.addScenarioPage(sc)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf *fpdf.Fpdf
}

func (r *pdfReport) addTitlePage(results *domain.ScenarioComparison) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(30)
	r.pdf.CellFormat(pdfContentWidth, 12, "Compound Growth Projection", "", 1, "C", false, 0, "")

	if !results.GeneratedAt.IsZero() {
		r.pdf.SetFont("Arial", "I", 11)
		r.pdf.SetTextColor(80, 80, 80)
		r.pdf.Ln(5)
		r.pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("Generated: %s", results.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	}

	r.pdf.Ln(15)
	r.drawSectionHeader("Key Assumptions")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range assumptionsFor(results.Assumptions) {
		r.pdf.MultiCell(pdfContentWidth, 5, "- "+a, "", "L", false)
	}

	if len(results.Scenarios) > 1 {
		rec := AnalyzeScenarios(results)
		r.pdf.Ln(8)
		r.drawSectionHeader("Comparison")
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.MultiCell(pdfContentWidth, 5, fmt.Sprintf("Highest real balance: %s (%s, %s ahead of %s)",
			rec.ScenarioName, FormatCurrency(rec.FinalRealBalance), FormatCurrency(rec.Advantage), rec.RunnerUp), "", "L", false)
		if msg := crossoverMessage(results); msg != "" {
			r.pdf.MultiCell(pdfContentWidth, 5, msg, "", "L", false)
		}
	}
}

func (r *pdfReport) addScenarioPage(sc domain.ScenarioSummary) {
	r.pdf.AddPage()
	r.drawSectionHeader(sc.Name)
	if sc.Projection == nil {
		return
	}
	res := sc.Projection

	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	lines := []string{
		fmt.Sprintf("Final balance: %s (real %s)", FormatCurrency(res.FinalBalance), FormatCurrency(res.FinalRealBalance)),
		fmt.Sprintf("Total invested: %s (real %s)", FormatCurrency(res.FinalContributed), FormatCurrency(res.FinalRealContributed)),
		fmt.Sprintf("Total interest: %s (real %s)", FormatCurrency(res.FinalInterest), FormatCurrency(res.FinalRealInterest)),
	}
	if sc.PassiveIncome.Monthly > 0 {
		lines = append(lines, fmt.Sprintf("Passive income: %s/month, %s/year", FormatCurrency(sc.PassiveIncome.Monthly), FormatCurrency(sc.PassiveIncome.Annual)))
	}
	if msg := GoalMessage(sc); msg != "" {
		lines = append(lines, msg)
	}
	for i, line := range lines {
		border := "LR"
		if i == 0 {
			border = "LRT"
		}
		if i == len(lines)-1 {
			border += "B"
		}
		r.pdf.CellFormat(pdfContentWidth, 7, line, border, 1, "L", true, 0, "")
	}

	r.pdf.Ln(8)
	headers := []string{"Period", "Balance", "Contributed", "Interest", "Real balance"}
	widths := []float64{30, 40, 40, 35, 35}
	r.drawTableHeader(headers, widths)
	for _, pt := range calc.AnnualSnapshots(res) {
		r.drawTableRow([]string{
			dateutil.PeriodLabel(sc.StartDate, pt.Period),
			FormatCurrency(pt.Balance),
			FormatCurrency(pt.Contributed),
			FormatCurrency(pt.Interest),
			FormatCurrency(pt.RealBalance),
		}, widths)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFont("Arial", "", 9)
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
