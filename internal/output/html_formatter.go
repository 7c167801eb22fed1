package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// HTMLFormatter produces a self-contained HTML report with inline SVG charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"compact": FormatCompact,
	"pct":     FormatPercentage,
	"mult":    FormatMultiple,
	"shares":  FormatShares,
	"yesno":   yesNo,
	"raw":     formatRaw,
}).Parse(htmlTemplateSource))

// Chart geometry, in SVG user units.
const (
	chartWidth   = 480.0
	chartHeight  = 240.0
	chartPadding = 40.0
	barMaxWidth  = 300.0
	barRowHeight = 20.0
)

type chartPoint struct {
	X, Y  float64
	Label string
	Wacc  float64
	Npv   float64
}

type sensitivityChart struct {
	Width, Height float64
	Left, Right   float64
	Top, Bottom   float64
	Points        []chartPoint
	Polyline      string
}

type debtBar struct {
	Name   string
	Weight float64
	Amount float64
	Y      float64
	Width  float64
}

// buildSensitivityChart lays the scenarios out on WACC (x) against NPV index (y).
// It returns nil when there is nothing finite to plot.
func buildSensitivityChart(rows []domain.SensitivityScenario) *sensitivityChart {
	if len(rows) < 2 {
		return nil
	}
	sorted := append([]domain.SensitivityScenario(nil), rows...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Wacc < sorted[j].Wacc })

	xmin, xmax := sorted[0].Wacc, sorted[len(sorted)-1].Wacc
	ymin, ymax := sorted[0].NpvIndex, sorted[0].NpvIndex
	for _, r := range sorted {
		if !decimal.IsFinite(r.Wacc) || !decimal.IsFinite(r.NpvIndex) {
			return nil
		}
		if r.NpvIndex < ymin {
			ymin = r.NpvIndex
		}
		if r.NpvIndex > ymax {
			ymax = r.NpvIndex
		}
	}
	if xmax == xmin {
		xmin, xmax = xmin-1, xmax+1
	}
	ymin, ymax = ymin-5, ymax+5

	c := &sensitivityChart{
		Width: chartWidth, Height: chartHeight,
		Left: chartPadding, Right: chartWidth - chartPadding,
		Top: chartPadding, Bottom: chartHeight - chartPadding,
	}
	coords := make([]string, 0, len(sorted))
	for _, r := range sorted {
		p := chartPoint{
			X:     c.Left + (r.Wacc-xmin)/(xmax-xmin)*(c.Right-c.Left),
			Y:     c.Bottom - (r.NpvIndex-ymin)/(ymax-ymin)*(c.Bottom-c.Top),
			Label: r.Label,
			Wacc:  r.Wacc,
			Npv:   r.NpvIndex,
		}
		c.Points = append(c.Points, p)
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
	}
	c.Polyline = strings.Join(coords, " ")
	return c
}

func buildDebtBars(s *domain.DebtStackResult) []debtBar {
	if s == nil {
		return nil
	}
	bars := make([]debtBar, 0, len(s.Tranches))
	for i, t := range s.Tranches {
		width := 0.0
		if decimal.IsFinite(t.Weight) && t.Weight > 0 {
			width = t.Weight / 100 * barMaxWidth
		}
		bars = append(bars, debtBar{Name: t.Name, Weight: t.Weight, Amount: t.Amount, Y: float64(i) * barRowHeight, Width: width})
	}
	return bars
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Chart      *sensitivityChart
		DebtBars   []debtBar
		BarsHeight float64
		Notes      []string
		Errors     []string
	}{
		Report:   report,
		Chart:    buildSensitivityChart(report.Sensitivity),
		DebtBars: buildDebtBars(report.DebtStack),
		Notes:    GenerateNotes(report),
	}
	data.BarsHeight = float64(len(data.DebtBars)) * barRowHeight
	for _, k := range errorKeys(report) {
		data.Errors = append(data.Errors, k+": "+report.Errors[k])
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
