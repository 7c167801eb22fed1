package calculation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDilution_DefaultWorkbook(t *testing.T) {
	res := CalculateDilution(domain.DefaultDilutionInputs())

	assert.Equal(t, 500_000_000.0, res.PostMoneyValuation)
	assert.Equal(t, 45.0, res.PricePerShare)
	assert.Equal(t, 1_111_111.0, res.NewShares)
	assert.Equal(t, 11_111_111.0, res.TotalSharesPost)
	assert.Equal(t, 100.0, res.OwnershipPre)
	assert.Equal(t, 90.0, res.OwnershipPost)
	assert.Equal(t, 10.0, res.DilutionPercent)
	assert.Equal(t, 40.0, res.ValuePerSharePre)
	assert.Equal(t, 45.0, res.ValuePerSharePost)
}

func TestCalculateDilution_TermSheetFlagsPassThrough(t *testing.T) {
	base := domain.DefaultDilutionInputs()
	flagged := base
	flagged.LiquidationPreference = 2.5
	flagged.ParticipationRights = true
	flagged.ProRataRights = false

	a, b := CalculateDilution(base), CalculateDilution(flagged)

	assert.Equal(t, 2.5, b.LiquidationPreference)
	assert.True(t, b.ParticipationRights)
	assert.False(t, b.ProRataRights)

	// Nothing else moves.
	b.LiquidationPreference, b.ParticipationRights, b.ProRataRights = a.LiquidationPreference, a.ParticipationRights, a.ProRataRights
	assert.Equal(t, a, b)
}

func TestCalculateDilution_OwnershipUsesUnroundedShareCount(t *testing.T) {
	// 3 shares at a pre-money of 10 give a price of 3.333...; raising 5 issues 1.5 shares.
	// Rounding 1.5 to 2 before summing would report 60% instead of 66.67%.
	in := domain.DilutionInputs{CurrentShares: 3, CurrentValuation: 10, PreMoneyValuation: 10, FundraiseAmount: 5}
	res := CalculateDilution(in)

	assert.Equal(t, 2.0, res.NewShares)
	assert.Equal(t, 5.0, res.TotalSharesPost)
	assert.Equal(t, 66.67, res.OwnershipPost)
	assert.InDelta(t, 33.33, res.DilutionPercent, 1e-9)
	assert.Equal(t, 3.33, res.ValuePerSharePost)
}

func TestCalculateDilution_TinyStakeStaysPositive(t *testing.T) {
	// One share priced at 1 against a raise of 1e6: the holder keeps 1/1000001 of the company.
	in := domain.DilutionInputs{CurrentShares: 1, CurrentValuation: 1, PreMoneyValuation: 1, FundraiseAmount: 1e6}
	res := CalculateDilution(in)

	assert.Equal(t, 1_000_000.0, res.NewShares)
	assert.Equal(t, 1_000_001.0, res.TotalSharesPost)
	assert.Greater(t, res.OwnershipPost, 0.0)
	assert.InDelta(t, 100.0/1_000_001, res.OwnershipPost, 1e-12)
	assert.Equal(t, 100-res.OwnershipPost, res.DilutionPercent)
	assert.Less(t, res.DilutionPercent, 100.0)
}

func TestCalculateDilution_TinyStakeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		in := domain.DilutionInputs{
			CurrentShares:     1 + rng.Int63n(100),
			PreMoneyValuation: 1 + rng.Float64()*100,
			FundraiseAmount:   rng.Float64() * 1e9,
		}
		res := CalculateDilution(in)

		assert.Greater(t, res.OwnershipPost, 0.0, "%+v", in)
		assert.LessOrEqual(t, res.OwnershipPost, 100.0)
		assert.Equal(t, 100-res.OwnershipPost, res.DilutionPercent)
	}
}

func TestCalculateDilution_NoRaise(t *testing.T) {
	in := domain.DefaultDilutionInputs()
	in.FundraiseAmount = 0
	res := CalculateDilution(in)

	assert.Equal(t, 0.0, res.NewShares)
	assert.Equal(t, 100.0, res.OwnershipPost)
	assert.Equal(t, 0.0, res.DilutionPercent)
	assert.Equal(t, in.PreMoneyValuation, res.PostMoneyValuation)
}

func TestCalculateDilution_ZeroSharesIsNonFinite(t *testing.T) {
	in := domain.DefaultDilutionInputs()
	in.CurrentShares = 0
	res := CalculateDilution(in)

	assert.True(t, math.IsInf(res.PricePerShare, 1))
	assert.True(t, math.IsNaN(res.OwnershipPost))
	assert.True(t, math.IsNaN(res.DilutionPercent))
	assert.Contains(t, res.NonFinite(), "ownership_post")
	assert.Equal(t, 500_000_000.0, res.PostMoneyValuation)
}

func TestCalculateDilution_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		in := domain.DilutionInputs{
			CurrentShares:     1 + rng.Int63n(100_000_000),
			CurrentValuation:  rng.Float64() * 1e9,
			FundraiseAmount:   rng.Float64() * 1e8,
			PreMoneyValuation: 1e6 + rng.Float64()*1e9,
		}
		res := CalculateDilution(in)

		assert.Equal(t, in.PreMoneyValuation+in.FundraiseAmount, res.PostMoneyValuation)
		assert.Equal(t, 100-res.OwnershipPost, res.DilutionPercent)
		assert.InDelta(t, 100, res.OwnershipPost+res.DilutionPercent, 1e-9)
		assert.Greater(t, res.OwnershipPost, 0.0)
		assert.LessOrEqual(t, res.OwnershipPost, 100.0)
		assert.Equal(t, res, CalculateDilution(in), "idempotence")
	}
}

func TestValidateDilution(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.DilutionInputs)
		field  string
		kind   error
	}{
		{"valid", func(*domain.DilutionInputs) {}, "", nil},
		{"zero shares", func(in *domain.DilutionInputs) { in.CurrentShares = 0 }, "current_shares", ErrDivideByZero},
		{"negative shares", func(in *domain.DilutionInputs) { in.CurrentShares = -10 }, "current_shares", ErrInvalidRange},
		{"zero pre-money", func(in *domain.DilutionInputs) { in.PreMoneyValuation = 0 }, "price_per_share", ErrDivideByZero},
		{"negative raise", func(in *domain.DilutionInputs) { in.FundraiseAmount = -1 }, "fundraise_amount", ErrInvalidRange},
		{"negative preference", func(in *domain.DilutionInputs) { in.LiquidationPreference = -1 }, "liquidation_preference", ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.DefaultDilutionInputs()
			tt.modify(&in)
			err := ValidateDilution(in)
			if tt.kind == nil {
				assert.NoError(t, err)
				return
			}
			var ce *CalcError
			if assert.ErrorAs(t, err, &ce) {
				assert.Equal(t, tt.field, ce.Field)
			}
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}
