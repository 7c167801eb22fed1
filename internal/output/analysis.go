package output

import (
	"github.com/rpgo/corpfin-calculator/internal/domain"
)

// Units used by Metric.
const (
	UnitCurrency = "currency"
	UnitPercent  = "percent"
	UnitMultiple = "multiple"
	UnitShares   = "shares"
	UnitFlag     = "flag"
)

// Metric is one headline figure of a report, flattened for tabular outputs.
type Metric struct {
	Calculator string
	Name       string
	Value      float64
	Unit       string
}

// Display renders the metric value according to its unit.
func (m Metric) Display() string {
	switch m.Unit {
	case UnitCurrency:
		return FormatCurrency(m.Value)
	case UnitPercent:
		return FormatPercentage(m.Value)
	case UnitMultiple:
		return FormatMultiple(m.Value)
	case UnitShares:
		return FormatShares(m.Value)
	case UnitFlag:
		return yesNo(m.Value != 0)
	default:
		return formatRaw(m.Value)
	}
}

// SummarizeReport extracts the headline metrics of every calculator that ran.
// Extracted from the formatters so each tabular output lists the same figures.
func SummarizeReport(r *domain.Report) []Metric {
	var out []Metric
	add := func(calc, name string, v float64, unit string) {
		out = append(out, Metric{Calculator: calc, Name: name, Value: v, Unit: unit})
	}

	if w := r.Wacc; w != nil {
		c := domain.CalculatorWACC
		add(c, "WACC", w.Wacc, UnitPercent)
		add(c, "Equity Weight", w.EquityWeight, UnitPercent)
		add(c, "Debt Weight", w.DebtWeight, UnitPercent)
		add(c, "CAPM Cost of Equity", w.CapmCostOfEquity, UnitPercent)
		add(c, "After-Tax Cost of Debt", w.AfterTaxCostOfDebt, UnitPercent)
		add(c, "Total Value", w.TotalValue, UnitCurrency)
	}

	for _, s := range r.Sensitivity {
		add(domain.CalculatorSensitivity, s.Label+" WACC", s.Wacc, UnitPercent)
	}

	if d := r.Dilution; d != nil {
		c := domain.CalculatorDilution
		add(c, "Post-Money Valuation", d.PostMoneyValuation, UnitCurrency)
		add(c, "Price per Share", d.PricePerShare, UnitCurrency)
		add(c, "New Shares", d.NewShares, UnitShares)
		add(c, "Total Shares Post", d.TotalSharesPost, UnitShares)
		add(c, "Ownership Pre", d.OwnershipPre, UnitPercent)
		add(c, "Ownership Post", d.OwnershipPost, UnitPercent)
		add(c, "Dilution", d.DilutionPercent, UnitPercent)
		add(c, "Value per Share Pre", d.ValuePerSharePre, UnitCurrency)
		add(c, "Value per Share Post", d.ValuePerSharePost, UnitCurrency)
	}

	if s := r.DebtStack; s != nil {
		c := domain.CalculatorDebtStack
		add(c, "Total Debt", s.TotalDebt, UnitCurrency)
		add(c, "Total Interest", s.TotalInterest, UnitCurrency)
		add(c, "Weighted Average Cost", s.WeightedAverageCost, UnitPercent)
		add(c, "Total Leverage", s.TotalLeverageRatio, UnitMultiple)
		add(c, "Interest Coverage", s.InterestCoverage, UnitMultiple)
		add(c, "Free Cash Flow", s.FreeCashFlow, UnitCurrency)
	}

	return out
}
