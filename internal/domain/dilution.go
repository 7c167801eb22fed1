package domain

import "encoding/json"

// DilutionInputs describes a priced equity round.
//
// LiquidationPreference, ParticipationRights and ProRataRights are term-sheet flags
// carried through for display. No dilution formula reads them.
type DilutionInputs struct {
	CurrentShares         int64   `yaml:"current_shares" json:"current_shares"`
	CurrentValuation      float64 `yaml:"current_valuation" json:"current_valuation"`
	FundraiseAmount       float64 `yaml:"fundraise_amount" json:"fundraise_amount"`
	PreMoneyValuation     float64 `yaml:"pre_money_valuation" json:"pre_money_valuation"`
	LiquidationPreference float64 `yaml:"liquidation_preference" json:"liquidation_preference"`
	ParticipationRights   bool    `yaml:"participation_rights" json:"participation_rights"`
	ProRataRights         bool    `yaml:"pro_rata_rights" json:"pro_rata_rights"`
}

// DilutionResult is the output of a dilution calculation.
// NewShares and TotalSharesPost are whole numbers; they stay float64 so that a
// degenerate round can report NaN or an infinity.
type DilutionResult struct {
	PostMoneyValuation float64 `yaml:"post_money_valuation" json:"post_money_valuation"`
	PricePerShare      float64 `yaml:"price_per_share" json:"price_per_share"`
	NewShares          float64 `yaml:"new_shares" json:"new_shares"`
	TotalSharesPost    float64 `yaml:"total_shares_post" json:"total_shares_post"`
	OwnershipPre       float64 `yaml:"ownership_pre" json:"ownership_pre"`
	OwnershipPost      float64 `yaml:"ownership_post" json:"ownership_post"`
	DilutionPercent    float64 `yaml:"dilution_percent" json:"dilution_percent"`
	ValuePerSharePre   float64 `yaml:"value_per_share_pre" json:"value_per_share_pre"`
	ValuePerSharePost  float64 `yaml:"value_per_share_post" json:"value_per_share_post"`

	LiquidationPreference float64 `yaml:"liquidation_preference" json:"liquidation_preference"`
	ParticipationRights   bool    `yaml:"participation_rights" json:"participation_rights"`
	ProRataRights         bool    `yaml:"pro_rata_rights" json:"pro_rata_rights"`
}

// DefaultDilutionInputs returns the starting values of the dilution workbook.
func DefaultDilutionInputs() DilutionInputs {
	return DilutionInputs{
		CurrentShares:         10_000_000,
		CurrentValuation:      400_000_000,
		FundraiseAmount:       50_000_000,
		PreMoneyValuation:     450_000_000,
		LiquidationPreference: 1.0,
		ParticipationRights:   false,
		ProRataRights:         true,
	}
}

// NonFinite lists the fields holding NaN or an infinity.
func (r DilutionResult) NonFinite() []string {
	return nonFinite(
		named{"post_money_valuation", r.PostMoneyValuation},
		named{"price_per_share", r.PricePerShare},
		named{"new_shares", r.NewShares},
		named{"total_shares_post", r.TotalSharesPost},
		named{"ownership_post", r.OwnershipPost},
		named{"dilution_percent", r.DilutionPercent},
		named{"value_per_share_pre", r.ValuePerSharePre},
		named{"value_per_share_post", r.ValuePerSharePost},
	)
}

// MarshalJSON encodes non-finite fields as null.
func (r DilutionResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PostMoneyValuation    jsonFloat `json:"post_money_valuation"`
		PricePerShare         jsonFloat `json:"price_per_share"`
		NewShares             jsonFloat `json:"new_shares"`
		TotalSharesPost       jsonFloat `json:"total_shares_post"`
		OwnershipPre          jsonFloat `json:"ownership_pre"`
		OwnershipPost         jsonFloat `json:"ownership_post"`
		DilutionPercent       jsonFloat `json:"dilution_percent"`
		ValuePerSharePre      jsonFloat `json:"value_per_share_pre"`
		ValuePerSharePost     jsonFloat `json:"value_per_share_post"`
		LiquidationPreference jsonFloat `json:"liquidation_preference"`
		ParticipationRights   bool      `json:"participation_rights"`
		ProRataRights         bool      `json:"pro_rata_rights"`
	}{
		jsonFloat(r.PostMoneyValuation),
		jsonFloat(r.PricePerShare),
		jsonFloat(r.NewShares),
		jsonFloat(r.TotalSharesPost),
		jsonFloat(r.OwnershipPre),
		jsonFloat(r.OwnershipPost),
		jsonFloat(r.DilutionPercent),
		jsonFloat(r.ValuePerSharePre),
		jsonFloat(r.ValuePerSharePost),
		jsonFloat(r.LiquidationPreference),
		r.ParticipationRights,
		r.ProRataRights,
	})
}
