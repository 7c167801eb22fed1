package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/corpfin-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per headline metric).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Calculator", "Metric", "Value", "Unit"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range SummarizeReport(report) {
		row := []string{m.Calculator, m.Name, formatRaw(m.Value), m.Unit}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
