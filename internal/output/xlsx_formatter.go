package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// Sheet names of the spreadsheet report.
const (
	SheetWACC        = "WACC"
	SheetSensitivity = "Sensitivity"
	SheetDilution    = "Dilution"
	SheetDebtStack   = "Debt Stack"
	SheetNotes       = "Notes"
)

// XLSXFormatter writes one worksheet per calculator. Numbers are stored as
// numeric cells; NaN and infinities are written as "n/a" text.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{f: f}
	first := true
	sheet := func(name string) {
		if first {
			w.err = f.SetSheetName("Sheet1", name)
			first = false
		} else if w.err == nil {
			_, w.err = f.NewSheet(name)
		}
		w.sheet, w.row = name, 0
	}

	if r := report.Wacc; r != nil {
		in := report.Inputs.Wacc
		sheet(SheetWACC)
		w.line("Input", "Value")
		w.line("Market Value of Equity", cell(in.MarketValueEquity))
		w.line("Market Value of Debt", cell(in.MarketValueDebt))
		w.line("Cost of Equity (%)", cell(in.CostOfEquity))
		w.line("Cost of Debt (%)", cell(in.CostOfDebt))
		w.line("Tax Rate (%)", cell(in.TaxRate))
		w.line("Risk-Free Rate (%)", cell(in.RiskFreeRate))
		w.line("Beta", cell(in.Beta))
		w.line("Market Risk Premium (%)", cell(in.MarketRiskPremium))
		w.line()
		w.line("Result", "Value")
		w.line("WACC (%)", cell(r.Wacc))
		w.line("Equity Weight (%)", cell(r.EquityWeight))
		w.line("Debt Weight (%)", cell(r.DebtWeight))
		w.line("CAPM Cost of Equity (%)", cell(r.CapmCostOfEquity))
		w.line("After-Tax Cost of Debt (%)", cell(r.AfterTaxCostOfDebt))
		w.line("Total Value", cell(r.TotalValue))
	}

	if len(report.Sensitivity) > 0 {
		sheet(SheetSensitivity)
		w.line("Scenario", "WACC (%)", "NPV Index")
		for _, s := range report.Sensitivity {
			w.line(s.Label, cell(s.Wacc), cell(s.NpvIndex))
		}
	}

	if d := report.Dilution; d != nil {
		in := report.Inputs.Dilution
		sheet(SheetDilution)
		w.line("Input", "Value")
		w.line("Current Shares", in.CurrentShares)
		w.line("Current Valuation", cell(in.CurrentValuation))
		w.line("Fundraise Amount", cell(in.FundraiseAmount))
		w.line("Pre-Money Valuation", cell(in.PreMoneyValuation))
		w.line("Liquidation Preference (x)", cell(d.LiquidationPreference))
		w.line("Participation Rights", yesNo(d.ParticipationRights))
		w.line("Pro-Rata Rights", yesNo(d.ProRataRights))
		w.line()
		w.line("Result", "Value")
		w.line("Post-Money Valuation", cell(d.PostMoneyValuation))
		w.line("Price per Share", cell(d.PricePerShare))
		w.line("New Shares", cell(d.NewShares))
		w.line("Total Shares Post", cell(d.TotalSharesPost))
		w.line("Ownership Pre (%)", cell(d.OwnershipPre))
		w.line("Ownership Post (%)", cell(d.OwnershipPost))
		w.line("Dilution (%)", cell(d.DilutionPercent))
		w.line("Value per Share Pre", cell(d.ValuePerSharePre))
		w.line("Value per Share Post", cell(d.ValuePerSharePost))
	}

	if s := report.DebtStack; s != nil {
		sheet(SheetDebtStack)
		w.line("Tranche", "Amount", "Rate (%)", "Maturity (years)", "Seniority", "Weight (%)", "Annual Interest")
		for _, t := range s.Tranches {
			w.line(t.Name, cell(t.Amount), cell(t.Rate), cell(t.Maturity), string(t.Seniority), cell(t.Weight), cell(t.AnnualInterest))
		}
		w.line()
		w.line("Total Debt", cell(s.TotalDebt))
		w.line("Total Interest", cell(s.TotalInterest))
		w.line("Weighted Average Cost (%)", cell(s.WeightedAverageCost))
		w.line("Total Leverage (x)", cell(s.TotalLeverageRatio))
		w.line("Interest Coverage (x)", cell(s.InterestCoverage))
		w.line("EBITDA", cell(report.Inputs.DebtStack.Ebitda))
		w.line("Free Cash Flow", cell(s.FreeCashFlow))
	}

	sheet(SheetNotes)
	for _, n := range GenerateNotes(report) {
		w.line(n)
	}
	for _, k := range errorKeys(report) {
		w.line("Error: "+k, report.Errors[k])
	}

	if w.err != nil {
		return nil, fmt.Errorf("building spreadsheet: %w", w.err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter appends rows to the current sheet and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func (w *sheetWriter) line(values ...any) {
	w.row++
	if w.err != nil || len(values) == 0 {
		return
	}
	addr, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(w.sheet, addr, &values)
}

// cell converts a float into a spreadsheet value, replacing non-finite numbers.
func cell(v float64) any {
	if !decimal.IsFinite(v) {
		return NotAvailable
	}
	return v
}
