package calculation

import (
	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// CalculateWACC computes the weighted average cost of capital.
//
// The blend uses the supplied CostOfEquity. The CAPM figure
// (RiskFreeRate + Beta*MarketRiskPremium) is returned alongside it for
// comparison and never substituted. Out-of-range inputs are not clamped;
// a zero total value yields NaN weights and WACC.
func CalculateWACC(in domain.WaccInputs) domain.WaccResult {
	totalValue := in.MarketValueEquity + in.MarketValueDebt
	equityWeight, debtWeight := capitalWeights(in)

	capm := in.RiskFreeRate + in.Beta*in.MarketRiskPremium
	afterTaxCostOfDebt := in.CostOfDebt * (1 - in.TaxRate/100)

	wacc := equityWeight*in.CostOfEquity + debtWeight*afterTaxCostOfDebt

	return domain.WaccResult{
		Wacc:               decimal.RoundFloat(wacc, ratePlaces),
		EquityWeight:       decimal.RoundFloat(equityWeight*100, weightPlaces),
		DebtWeight:         decimal.RoundFloat(debtWeight*100, weightPlaces),
		CapmCostOfEquity:   decimal.RoundFloat(capm, ratePlaces),
		AfterTaxCostOfDebt: decimal.RoundFloat(afterTaxCostOfDebt, ratePlaces),
		TotalValue:         totalValue,
	}
}

// capitalWeights returns the equity and debt shares of total capital as fractions.
func capitalWeights(in domain.WaccInputs) (equity, debt float64) {
	total := in.MarketValueEquity + in.MarketValueDebt
	return in.MarketValueEquity / total, in.MarketValueDebt / total
}

// ValidateWACC returns a *CalcError for the first input that would make the
// calculation undefined or meaningless.
func ValidateWACC(in domain.WaccInputs) error {
	c := checker{calculator: domain.CalculatorWACC}
	c.nonNegative("market_value_equity", in.MarketValueEquity)
	c.nonNegative("market_value_debt", in.MarketValueDebt)
	c.nonNegative("cost_of_equity", in.CostOfEquity)
	c.nonNegative("cost_of_debt", in.CostOfDebt)
	c.nonNegative("tax_rate", in.TaxRate)
	c.nonNegative("risk_free_rate", in.RiskFreeRate)
	c.nonNegative("market_risk_premium", in.MarketRiskPremium)
	c.finite("beta", in.Beta)
	c.nonZero("total_value", in.MarketValueEquity+in.MarketValueDebt)
	return c.err
}

// Rounding applied at the result boundary.
const (
	ratePlaces     = 2 // percentages and currency ratios
	weightPlaces   = 1 // capital and tranche weights
	multiplePlaces = 2 // leverage and coverage multiples
)
