package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/corpfin-calculator/internal/domain"
)

// CSVDetailedExporter provides row-level detail: one row per debt tranche and
// one per sensitivity scenario, distinguished by the Section column.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Index", "Name", "Amount", "Rate", "Maturity", "Seniority", "Weight", "AnnualInterest", "Wacc", "NpvIndex"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if s := report.DebtStack; s != nil {
		for i, t := range s.Tranches {
			row := []string{
				"tranche",
				intToString(i + 1),
				t.Name,
				formatRaw(t.Amount),
				formatRaw(t.Rate),
				formatRaw(t.Maturity),
				string(t.Seniority),
				formatRaw(t.Weight),
				formatRaw(t.AnnualInterest),
				"",
				"",
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	for i, sc := range report.Sensitivity {
		row := []string{
			"sensitivity",
			intToString(i + 1),
			sc.Label,
			"", "", "", "", "", "",
			formatRaw(sc.Wacc),
			formatRaw(sc.NpvIndex),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
