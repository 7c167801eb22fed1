package calculation

import (
	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// ownershipPre is the existing holders' stake before the round: the whole cap table.
const ownershipPre = 100.0

// CalculateDilution models a priced round: new shares are issued at the
// pre-money price per share and existing holders are diluted accordingly.
//
// Share counts are rounded only at the boundary; ownership is computed from the
// unrounded post-round share count and rounded once, unless rounding would
// collapse a positive stake to zero. The term-sheet flags are
// copied to the result untouched.
func CalculateDilution(in domain.DilutionInputs) domain.DilutionResult {
	currentShares := float64(in.CurrentShares)

	postMoney := in.PreMoneyValuation + in.FundraiseAmount
	pricePerShare := in.PreMoneyValuation / currentShares
	newShares := in.FundraiseAmount / pricePerShare
	totalSharesPost := currentShares + newShares

	rawOwnership := currentShares / totalSharesPost * 100
	ownershipPost := decimal.RoundFloat(rawOwnership, ratePlaces)
	if ownershipPost == 0 && rawOwnership > 0 {
		// A stake below 0.005% stays unrounded so it never reads as zero.
		ownershipPost = rawOwnership
	}

	return domain.DilutionResult{
		PostMoneyValuation: postMoney,
		PricePerShare:      decimal.RoundFloat(pricePerShare, ratePlaces),
		NewShares:          decimal.RoundWhole(newShares),
		TotalSharesPost:    decimal.RoundWhole(totalSharesPost),
		OwnershipPre:       ownershipPre,
		OwnershipPost:      ownershipPost,
		DilutionPercent:    ownershipPre - ownershipPost,
		ValuePerSharePre:   decimal.RoundFloat(in.CurrentValuation/currentShares, ratePlaces),
		ValuePerSharePost:  decimal.RoundFloat(postMoney/totalSharesPost, ratePlaces),

		LiquidationPreference: in.LiquidationPreference,
		ParticipationRights:   in.ParticipationRights,
		ProRataRights:         in.ProRataRights,
	}
}

// ValidateDilution returns a *CalcError for the first input that would make the
// calculation undefined or meaningless.
func ValidateDilution(in domain.DilutionInputs) error {
	c := checker{calculator: domain.CalculatorDilution}
	switch {
	case in.CurrentShares == 0:
		c.fail("current_shares", ErrDivideByZero)
	case in.CurrentShares < 0:
		c.fail("current_shares", ErrInvalidRange)
	}
	c.nonNegative("current_valuation", in.CurrentValuation)
	c.nonNegative("fundraise_amount", in.FundraiseAmount)
	c.nonNegative("pre_money_valuation", in.PreMoneyValuation)
	c.nonNegative("liquidation_preference", in.LiquidationPreference)
	// A zero pre-money price makes every new share free.
	c.nonZero("price_per_share", in.PreMoneyValuation)
	return c.err
}
