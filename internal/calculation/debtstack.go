package calculation

import (
	"fmt"

	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// CalculateDebtStack aggregates leverage and coverage metrics across the five tranches.
//
// Interest coverage divides EBITDA by the summed per-tranche interest rather than
// by totalDebt*weightedAverageCost, so the two figures cannot drift apart in
// floating point. FreeCashFlow is passed through unchanged.
func CalculateDebtStack(in domain.DebtStackInputs) domain.DebtStackResult {
	var totalDebt, totalInterest float64
	var interest [domain.TrancheCount]float64
	for i, t := range in.Tranches {
		totalDebt += t.Amount
		interest[i] = t.Amount * t.Rate / 100
		totalInterest += interest[i]
	}

	out := domain.DebtStackResult{
		TotalDebt:           totalDebt,
		TotalInterest:       decimal.RoundFloat(totalInterest, ratePlaces),
		WeightedAverageCost: decimal.RoundFloat(totalInterest/totalDebt*100, ratePlaces),
		TotalLeverageRatio:  decimal.RoundFloat(totalDebt/in.Ebitda, multiplePlaces),
		InterestCoverage:    decimal.RoundFloat(in.Ebitda/totalInterest, multiplePlaces),
		FreeCashFlow:        in.FreeCashFlow,
	}
	for i, t := range in.Tranches {
		out.Tranches[i] = domain.TrancheResult{
			DebtTranche:    t,
			Weight:         decimal.RoundFloat(t.Amount/totalDebt*100, weightPlaces),
			AnnualInterest: decimal.RoundFloat(interest[i], ratePlaces),
		}
	}
	return out
}

// ValidateDebtStack returns a *CalcError for the first input that would make the
// calculation undefined or meaningless.
func ValidateDebtStack(in domain.DebtStackInputs) error {
	c := checker{calculator: domain.CalculatorDebtStack}
	var totalDebt, totalInterest float64
	for i, t := range in.Tranches {
		c.nonNegative(fmt.Sprintf("tranches[%d].amount", i), t.Amount)
		c.nonNegative(fmt.Sprintf("tranches[%d].rate", i), t.Rate)
		c.nonNegative(fmt.Sprintf("tranches[%d].maturity", i), t.Maturity)
		totalDebt += t.Amount
		totalInterest += t.Amount * t.Rate / 100
	}
	c.finite("ebitda", in.Ebitda)
	c.finite("free_cash_flow", in.FreeCashFlow)
	c.nonZero("total_debt", totalDebt)
	c.nonZero("ebitda", in.Ebitda)
	c.nonZero("total_interest", totalInterest)
	return c.err
}
