package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/corpfin-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full text report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "CORPORATE FINANCE ANALYSIS")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	if w := report.Wacc; w != nil {
		in := report.Inputs.Wacc
		fmt.Fprintln(&buf, "WEIGHTED AVERAGE COST OF CAPITAL")
		fmt.Fprintln(&buf, strings.Repeat("-", 32))
		fmt.Fprintf(&buf, "  Market Value of Equity:  %s\n", FormatCompact(in.MarketValueEquity))
		fmt.Fprintf(&buf, "  Market Value of Debt:    %s\n", FormatCompact(in.MarketValueDebt))
		fmt.Fprintf(&buf, "  Total Capital:           %s\n", FormatCompact(w.TotalValue))
		fmt.Fprintf(&buf, "  Equity / Debt Weight:    %s / %s\n", FormatPercentage(w.EquityWeight), FormatPercentage(w.DebtWeight))
		fmt.Fprintf(&buf, "  Cost of Equity:          %s (CAPM %s)\n", FormatPercentage(in.CostOfEquity), FormatPercentage(w.CapmCostOfEquity))
		fmt.Fprintf(&buf, "  After-Tax Cost of Debt:  %s\n", FormatPercentage(w.AfterTaxCostOfDebt))
		fmt.Fprintf(&buf, "  WACC:                    %s\n", FormatPercentage(w.Wacc))
		fmt.Fprintln(&buf)
	}

	if len(report.Sensitivity) > 0 {
		fmt.Fprintln(&buf, "SENSITIVITY")
		fmt.Fprintln(&buf, strings.Repeat("-", 32))
		for _, s := range report.Sensitivity {
			fmt.Fprintf(&buf, "  %-20s WACC %8s  NPV index %3.0f\n", s.Label, FormatPercentage(s.Wacc), s.NpvIndex)
		}
		fmt.Fprintln(&buf)
	}

	if d := report.Dilution; d != nil {
		fmt.Fprintln(&buf, "EQUITY DILUTION")
		fmt.Fprintln(&buf, strings.Repeat("-", 32))
		fmt.Fprintf(&buf, "  Post-Money Valuation:    %s\n", FormatCompact(d.PostMoneyValuation))
		fmt.Fprintf(&buf, "  Price per Share:         %s\n", FormatCurrency(d.PricePerShare))
		fmt.Fprintf(&buf, "  New Shares Issued:       %s\n", FormatShares(d.NewShares))
		fmt.Fprintf(&buf, "  Total Shares Post:       %s\n", FormatShares(d.TotalSharesPost))
		fmt.Fprintf(&buf, "  Ownership:               %s -> %s\n", FormatPercentage(d.OwnershipPre), FormatPercentage(d.OwnershipPost))
		fmt.Fprintf(&buf, "  Dilution:                %s\n", FormatPercentage(d.DilutionPercent))
		fmt.Fprintf(&buf, "  Value per Share:         %s -> %s\n", FormatCurrency(d.ValuePerSharePre), FormatCurrency(d.ValuePerSharePost))
		fmt.Fprintln(&buf)
	}

	if s := report.DebtStack; s != nil {
		fmt.Fprintln(&buf, "DEBT STACK")
		fmt.Fprintln(&buf, strings.Repeat("-", 32))
		fmt.Fprintf(&buf, "  %-18s %10s %7s %8s %7s %11s  %s\n", "Tranche", "Amount", "Rate", "Maturity", "Weight", "Interest", "Seniority")
		for _, t := range s.Tranches {
			fmt.Fprintf(&buf, "  %-18s %10s %7s %7sy %7s %11s  %s\n",
				t.Name, FormatCompact(t.Amount), FormatPercentage(t.Rate), formatRaw(t.Maturity),
				FormatPercentage(t.Weight), FormatCompact(t.AnnualInterest), t.Seniority)
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "  Total Debt:              %s\n", FormatCompact(s.TotalDebt))
		fmt.Fprintf(&buf, "  Total Annual Interest:   %s\n", FormatCompact(s.TotalInterest))
		fmt.Fprintf(&buf, "  Weighted Average Cost:   %s\n", FormatPercentage(s.WeightedAverageCost))
		fmt.Fprintf(&buf, "  Total Leverage:          %s\n", FormatMultiple(s.TotalLeverageRatio))
		fmt.Fprintf(&buf, "  Interest Coverage:       %s\n", FormatMultiple(s.InterestCoverage))
		fmt.Fprintf(&buf, "  Free Cash Flow:          %s\n", FormatCompact(s.FreeCashFlow))
		fmt.Fprintln(&buf)
	}

	if report.HasErrors() {
		fmt.Fprintln(&buf, "ERRORS")
		fmt.Fprintln(&buf, strings.Repeat("-", 32))
		for _, k := range errorKeys(report) {
			fmt.Fprintf(&buf, "  %s: %s\n", k, report.Errors[k])
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "NOTES:")
	for _, n := range GenerateNotes(report) {
		fmt.Fprintf(&buf, "• %s\n", n)
	}

	return buf.Bytes(), nil
}
