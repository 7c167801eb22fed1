package domain

import "encoding/json"

// WaccInputs holds the capital structure and rate inputs for a WACC calculation.
// Rates are plain percentage numbers: 12.5 means 12.5%.
type WaccInputs struct {
	MarketValueEquity float64 `yaml:"market_value_equity" json:"market_value_equity"`
	MarketValueDebt   float64 `yaml:"market_value_debt" json:"market_value_debt"`
	CostOfEquity      float64 `yaml:"cost_of_equity" json:"cost_of_equity"` // used as-is in the blend
	CostOfDebt        float64 `yaml:"cost_of_debt" json:"cost_of_debt"`     // pre-tax
	TaxRate           float64 `yaml:"tax_rate" json:"tax_rate"`
	RiskFreeRate      float64 `yaml:"risk_free_rate" json:"risk_free_rate"`
	Beta              float64 `yaml:"beta" json:"beta"`
	MarketRiskPremium float64 `yaml:"market_risk_premium" json:"market_risk_premium"`
}

// WaccResult is the output of a WACC calculation. All rates and weights are percentages.
type WaccResult struct {
	Wacc               float64 `yaml:"wacc" json:"wacc"`
	EquityWeight       float64 `yaml:"equity_weight" json:"equity_weight"`
	DebtWeight         float64 `yaml:"debt_weight" json:"debt_weight"`
	CapmCostOfEquity   float64 `yaml:"capm_cost_of_equity" json:"capm_cost_of_equity"` // comparison figure only
	AfterTaxCostOfDebt float64 `yaml:"after_tax_cost_of_debt" json:"after_tax_cost_of_debt"`
	TotalValue         float64 `yaml:"total_value" json:"total_value"`
}

// DefaultWaccInputs returns the starting values of the WACC workbook.
func DefaultWaccInputs() WaccInputs {
	return WaccInputs{
		MarketValueEquity: 500_000_000,
		MarketValueDebt:   200_000_000,
		CostOfEquity:      12.5,
		CostOfDebt:        6.0,
		TaxRate:           25,
		RiskFreeRate:      4.5,
		Beta:              1.2,
		MarketRiskPremium: 8.0,
	}
}

// NonFinite lists the fields holding NaN or an infinity.
func (r WaccResult) NonFinite() []string {
	return nonFinite(
		named{"wacc", r.Wacc},
		named{"equity_weight", r.EquityWeight},
		named{"debt_weight", r.DebtWeight},
		named{"capm_cost_of_equity", r.CapmCostOfEquity},
		named{"after_tax_cost_of_debt", r.AfterTaxCostOfDebt},
		named{"total_value", r.TotalValue},
	)
}

// MarshalJSON encodes non-finite fields as null.
func (r WaccResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Wacc               jsonFloat `json:"wacc"`
		EquityWeight       jsonFloat `json:"equity_weight"`
		DebtWeight         jsonFloat `json:"debt_weight"`
		CapmCostOfEquity   jsonFloat `json:"capm_cost_of_equity"`
		AfterTaxCostOfDebt jsonFloat `json:"after_tax_cost_of_debt"`
		TotalValue         jsonFloat `json:"total_value"`
	}{
		jsonFloat(r.Wacc),
		jsonFloat(r.EquityWeight),
		jsonFloat(r.DebtWeight),
		jsonFloat(r.CapmCostOfEquity),
		jsonFloat(r.AfterTaxCostOfDebt),
		jsonFloat(r.TotalValue),
	})
}
