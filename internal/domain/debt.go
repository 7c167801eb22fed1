package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeniorityClass ranks a tranche in the capital structure
type SeniorityClass string

const (
	SeniorSecured   SeniorityClass = "Senior Secured"
	SeniorUnsecured SeniorityClass = "Senior Unsecured"
	Subordinated    SeniorityClass = "Subordinated"
)

// ParseSeniorityClass accepts the display name or a snake/kebab-case form
// ("senior_secured", "senior-unsecured"), case-insensitively.
func ParseSeniorityClass(s string) (SeniorityClass, error) {
	key := strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "senior secured":
		return SeniorSecured, nil
	case "senior unsecured":
		return SeniorUnsecured, nil
	case "subordinated":
		return Subordinated, nil
	}
	return "", fmt.Errorf("unknown seniority class %q", s)
}

// Valid reports whether c is one of the known classes.
func (c SeniorityClass) Valid() bool {
	switch c {
	case SeniorSecured, SeniorUnsecured, Subordinated:
		return true
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *SeniorityClass) UnmarshalText(text []byte) error {
	parsed, err := ParseSeniorityClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for SeniorityClass
func (c *SeniorityClass) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// TrancheCount is the fixed number of tranches in a debt stack.
const TrancheCount = 5

// Canonical tranche names, in stack order.
const (
	RevolvingCredit  = "Revolving Credit"
	TermLoanA        = "Term Loan A"
	TermLoanB        = "Term Loan B"
	SeniorNotes      = "Senior Notes"
	SubordinatedDebt = "Subordinated Debt"
)

// TrancheNames lists the canonical tranche names in stack order.
var TrancheNames = [TrancheCount]string{RevolvingCredit, TermLoanA, TermLoanB, SeniorNotes, SubordinatedDebt}

// DebtTranche is one layer of the debt stack. Rate is a percentage, Maturity is in years.
type DebtTranche struct {
	Name      string         `yaml:"name" json:"name"`
	Amount    float64        `yaml:"amount" json:"amount"`
	Rate      float64        `yaml:"rate" json:"rate"`
	Maturity  float64        `yaml:"maturity" json:"maturity"`
	Seniority SeniorityClass `yaml:"seniority_class" json:"seniority_class"`
}

// DebtStackInputs is the fixed five-tranche stack plus operating context.
// FreeCashFlow is carried through to the result; no metric reads it.
type DebtStackInputs struct {
	Tranches     [TrancheCount]DebtTranche `yaml:"tranches" json:"tranches"`
	Ebitda       float64                   `yaml:"ebitda" json:"ebitda"`
	FreeCashFlow float64                   `yaml:"free_cash_flow" json:"free_cash_flow"`
}

// TrancheResult extends a tranche with its share of the stack and its annual interest.
type TrancheResult struct {
	DebtTranche    `yaml:",inline"`
	Weight         float64 `yaml:"weight" json:"weight"`
	AnnualInterest float64 `yaml:"annual_interest" json:"annual_interest"`
}

// DebtStackResult aggregates leverage and coverage metrics across the stack.
type DebtStackResult struct {
	Tranches            [TrancheCount]TrancheResult `yaml:"tranches" json:"tranches"`
	TotalDebt           float64                     `yaml:"total_debt" json:"total_debt"`
	TotalInterest       float64                     `yaml:"total_interest" json:"total_interest"`
	WeightedAverageCost float64                     `yaml:"weighted_average_cost" json:"weighted_average_cost"`
	TotalLeverageRatio  float64                     `yaml:"total_leverage_ratio" json:"total_leverage_ratio"`
	InterestCoverage    float64                     `yaml:"interest_coverage" json:"interest_coverage"`
	FreeCashFlow        float64                     `yaml:"free_cash_flow" json:"free_cash_flow"`
}

// DefaultDebtStackInputs returns the starting values of the debt-stack workbook.
func DefaultDebtStackInputs() DebtStackInputs {
	return DebtStackInputs{
		Tranches: [TrancheCount]DebtTranche{
			{Name: RevolvingCredit, Amount: 25_000_000, Rate: 6.0, Maturity: 3, Seniority: SeniorSecured},
			{Name: TermLoanA, Amount: 100_000_000, Rate: 6.75, Maturity: 5, Seniority: SeniorSecured},
			{Name: TermLoanB, Amount: 150_000_000, Rate: 7.5, Maturity: 7, Seniority: SeniorSecured},
			{Name: SeniorNotes, Amount: 100_000_000, Rate: 8.5, Maturity: 8, Seniority: SeniorUnsecured},
			{Name: SubordinatedDebt, Amount: 50_000_000, Rate: 11.0, Maturity: 10, Seniority: Subordinated},
		},
		Ebitda:       80_000_000,
		FreeCashFlow: 45_000_000,
	}
}

// UnmarshalJSON decodes over the receiver's current values, so callers can
// overlay a partial document onto defaults. A tranches array must hold exactly
// TrancheCount entries.
func (in *DebtStackInputs) UnmarshalJSON(data []byte) error {
	var shape struct {
		Tranches []json.RawMessage `json:"tranches"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return err
	}
	if shape.Tranches != nil && len(shape.Tranches) != TrancheCount {
		return fmt.Errorf("debt stack needs exactly %d tranches, got %d", TrancheCount, len(shape.Tranches))
	}
	type plain DebtStackInputs
	return json.Unmarshal(data, (*plain)(in))
}

// NonFinite lists the fields holding NaN or an infinity. Tranche fields are
// reported as "tranches[i].field".
func (r DebtStackResult) NonFinite() []string {
	out := nonFinite(
		named{"total_debt", r.TotalDebt},
		named{"total_interest", r.TotalInterest},
		named{"weighted_average_cost", r.WeightedAverageCost},
		named{"total_leverage_ratio", r.TotalLeverageRatio},
		named{"interest_coverage", r.InterestCoverage},
	)
	for i, t := range r.Tranches {
		for _, f := range nonFinite(named{"weight", t.Weight}, named{"annual_interest", t.AnnualInterest}) {
			out = append(out, fmt.Sprintf("tranches[%d].%s", i, f))
		}
	}
	return out
}

// MarshalJSON encodes non-finite fields as null.
func (t TrancheResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name           string         `json:"name"`
		Amount         jsonFloat      `json:"amount"`
		Rate           jsonFloat      `json:"rate"`
		Maturity       jsonFloat      `json:"maturity"`
		Seniority      SeniorityClass `json:"seniority_class"`
		Weight         jsonFloat      `json:"weight"`
		AnnualInterest jsonFloat      `json:"annual_interest"`
	}{
		t.Name,
		jsonFloat(t.Amount),
		jsonFloat(t.Rate),
		jsonFloat(t.Maturity),
		t.Seniority,
		jsonFloat(t.Weight),
		jsonFloat(t.AnnualInterest),
	})
}

// MarshalJSON encodes non-finite fields as null.
func (r DebtStackResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Tranches            [TrancheCount]TrancheResult `json:"tranches"`
		TotalDebt           jsonFloat                   `json:"total_debt"`
		TotalInterest       jsonFloat                   `json:"total_interest"`
		WeightedAverageCost jsonFloat                   `json:"weighted_average_cost"`
		TotalLeverageRatio  jsonFloat                   `json:"total_leverage_ratio"`
		InterestCoverage    jsonFloat                   `json:"interest_coverage"`
		FreeCashFlow        jsonFloat                   `json:"free_cash_flow"`
	}{
		r.Tranches,
		jsonFloat(r.TotalDebt),
		jsonFloat(r.TotalInterest),
		jsonFloat(r.WeightedAverageCost),
		jsonFloat(r.TotalLeverageRatio),
		jsonFloat(r.InterestCoverage),
		jsonFloat(r.FreeCashFlow),
	})
}
