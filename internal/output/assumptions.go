package output

import (
	"fmt"

	"github.com/rpgo/corpfin-calculator/internal/domain"
)

// DefaultNotes lists modelling notes that hold for every report.
var DefaultNotes = []string{
	"WACC blends the entered cost of equity; the CAPM figure is shown for comparison only",
	"Sensitivity NPV index values are a fixed illustrative curve, not a discounted cash flow",
	"Interest coverage is EBITDA divided by total annual interest across all tranches",
	"Rounding: percentages and multiples to 2 decimals, weights to 1 decimal, shares to whole units",
}

// GenerateNotes creates the notes list for a report, adding the inputs that
// are carried through without feeding any formula.
func GenerateNotes(r *domain.Report) []string {
	notes := append([]string(nil), DefaultNotes...)
	if r == nil {
		return notes
	}
	if d := r.Dilution; d != nil {
		notes = append(notes, fmt.Sprintf(
			"Liquidation preference (%sx), participation (%s) and pro-rata (%s) are recorded but not modelled",
			formatRaw(d.LiquidationPreference), yesNo(d.ParticipationRights), yesNo(d.ProRataRights)))
		notes = append(notes, fmt.Sprintf(
			"Current valuation %s is informational; share price derives from the pre-money valuation",
			FormatCompact(r.Inputs.Dilution.CurrentValuation)))
	}
	if s := r.DebtStack; s != nil {
		notes = append(notes, fmt.Sprintf(
			"Free cash flow %s, tranche maturities and seniority classes are informational",
			FormatCompact(s.FreeCashFlow)))
	}
	return notes
}
