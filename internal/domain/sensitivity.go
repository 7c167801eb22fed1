package domain

import "encoding/json"

// SensitivityScenario is one point on the WACC/NPV sensitivity chart.
// NpvIndex is an illustrative index (base case = 100), not a valuation output.
type SensitivityScenario struct {
	Label    string  `yaml:"label" json:"label"`
	Wacc     float64 `yaml:"wacc" json:"wacc"`
	NpvIndex float64 `yaml:"npv_index" json:"npv_index"`
}

// MarshalJSON encodes a non-finite WACC as null.
func (s SensitivityScenario) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label    string    `json:"label"`
		Wacc     jsonFloat `json:"wacc"`
		NpvIndex jsonFloat `json:"npv_index"`
	}{s.Label, jsonFloat(s.Wacc), jsonFloat(s.NpvIndex)})
}
