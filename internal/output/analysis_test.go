package output

import (
	"math"
	"testing"

	"github.com/rpgo/corpfin-calculator/internal/domain"
)

func TestSummarizeReport_CoversEveryCalculator(t *testing.T) {
	metrics := SummarizeReport(buildTestReport(t))

	counts := map[string]int{}
	for _, m := range metrics {
		counts[m.Calculator]++
	}
	want := map[string]int{
		domain.CalculatorWACC:        6,
		domain.CalculatorSensitivity: 5,
		domain.CalculatorDilution:    9,
		domain.CalculatorDebtStack:   6,
	}
	for calc, n := range want {
		if counts[calc] != n {
			t.Fatalf("%s: expected %d metrics, got %d", calc, n, counts[calc])
		}
	}
}

func TestSummarizeReport_SkipsMissingSections(t *testing.T) {
	report := buildTestReport(t)
	report.Dilution = nil
	report.Sensitivity = nil
	for _, m := range SummarizeReport(report) {
		if m.Calculator == domain.CalculatorDilution || m.Calculator == domain.CalculatorSensitivity {
			t.Fatalf("unexpected metric %+v", m)
		}
	}
	if got := SummarizeReport(&domain.Report{}); len(got) != 0 {
		t.Fatalf("empty report should have no metrics, got %d", len(got))
	}
}

func TestMetricDisplay(t *testing.T) {
	cases := []struct {
		m    Metric
		want string
	}{
		{Metric{Value: 10.21, Unit: UnitPercent}, "10.21%"},
		{Metric{Value: 5.3125, Unit: UnitMultiple}, "5.31x"},
		{Metric{Value: 45, Unit: UnitCurrency}, "$45.00"},
		{Metric{Value: 1111111, Unit: UnitShares}, "1111111"},
		{Metric{Value: 1, Unit: UnitFlag}, "Yes"},
		{Metric{Value: math.NaN(), Unit: UnitPercent}, NotAvailable},
		{Metric{Value: math.Inf(1), Unit: UnitMultiple}, NotAvailable},
	}
	for _, tc := range cases {
		if got := tc.m.Display(); got != tc.want {
			t.Errorf("Display(%v %s) = %q, want %q", tc.m.Value, tc.m.Unit, got, tc.want)
		}
	}
}

func TestGenerateNotes(t *testing.T) {
	if got := GenerateNotes(nil); len(got) != len(DefaultNotes) {
		t.Fatalf("nil report should yield default notes only")
	}
	notes := GenerateNotes(buildTestReport(t))
	if len(notes) != len(DefaultNotes)+3 {
		t.Fatalf("expected pass-through notes, got %v", notes)
	}
	if want := "Liquidation preference (1x), participation (No) and pro-rata (Yes) are recorded but not modelled"; notes[len(DefaultNotes)] != want {
		t.Fatalf("unexpected note %q", notes[len(DefaultNotes)])
	}
	// GenerateNotes must not alias DefaultNotes.
	notes[0] = "changed"
	if DefaultNotes[0] == "changed" {
		t.Fatalf("GenerateNotes modified DefaultNotes")
	}
}
