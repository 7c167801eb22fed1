package domain

// Calculator identifiers, used as keys in Report.Errors and in log fields.
const (
	CalculatorWACC        = "wacc"
	CalculatorDilution    = "dilution"
	CalculatorDebtStack   = "debt_stack"
	CalculatorSensitivity = "sensitivity"
)

// Configuration is a complete input workbook: one snapshot per calculator.
type Configuration struct {
	Wacc      WaccInputs      `yaml:"wacc" json:"wacc"`
	Dilution  DilutionInputs  `yaml:"dilution" json:"dilution"`
	DebtStack DebtStackInputs `yaml:"debt_stack" json:"debt_stack"`
}

// DefaultConfiguration returns the workbook with every calculator at its starting values.
func DefaultConfiguration() Configuration {
	return Configuration{
		Wacc:      DefaultWaccInputs(),
		Dilution:  DefaultDilutionInputs(),
		DebtStack: DefaultDebtStackInputs(),
	}
}

// Report collects the results of running every calculator over one workbook.
// A nil section means that calculator was not run or failed; see Errors.
type Report struct {
	Inputs      Configuration         `yaml:"inputs" json:"inputs"`
	Wacc        *WaccResult           `yaml:"wacc,omitempty" json:"wacc,omitempty"`
	Sensitivity []SensitivityScenario `yaml:"sensitivity,omitempty" json:"sensitivity,omitempty"`
	Dilution    *DilutionResult       `yaml:"dilution,omitempty" json:"dilution,omitempty"`
	DebtStack   *DebtStackResult      `yaml:"debt_stack,omitempty" json:"debt_stack,omitempty"`
	Errors      map[string]string     `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// HasErrors reports whether any calculator failed.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}
