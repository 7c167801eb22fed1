package calculation

import (
	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// sensitivityCurve is a fixed illustrative curve: each row shifts the base WACC
// by a constant and pairs it with a constant NPV index. Nothing is revalued.
var sensitivityCurve = [...]struct {
	label    string
	shift    float64
	npvIndex float64
}{
	{"Base Case", 0, 100},
	{"-2% Cost of Equity", -1.2, 115},
	{"-1% Cost of Equity", -0.6, 107},
	{"+1% Cost of Equity", 0.6, 94},
	{"+2% Cost of Equity", 1.2, 87},
}

// GenerateSensitivity returns the five sensitivity rows around a base WACC.
// A non-finite base WACC propagates into every row.
func GenerateSensitivity(wacc float64) []domain.SensitivityScenario {
	rows := make([]domain.SensitivityScenario, 0, len(sensitivityCurve))
	for _, p := range sensitivityCurve {
		rows = append(rows, domain.SensitivityScenario{
			Label:    p.label,
			Wacc:     decimal.RoundFloat(wacc+p.shift, ratePlaces),
			NpvIndex: p.npvIndex,
		})
	}
	return rows
}

// ValidateSensitivity rejects a non-finite base WACC.
func ValidateSensitivity(wacc float64) error {
	c := checker{calculator: domain.CalculatorSensitivity}
	c.finite("wacc", wacc)
	return c.err
}
