package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// errNoBaseWacc is recorded for the sensitivity table when the WACC calculator failed.
var errNoBaseWacc = errors.New("no base WACC result")

// CalculationEngine applies one error policy to every calculator.
//
// In the default lenient mode inputs are not checked and degenerate inputs
// produce NaN or infinite fields. In strict mode the same conditions return a
// *CalcError and a zero result. The engine holds no per-call state and is safe
// for concurrent use.
type CalculationEngine struct {
	strict bool
	Logger Logger
}

// Option configures a CalculationEngine
type Option func(*CalculationEngine)

// WithStrict selects the strict error policy.
func WithStrict(strict bool) Option {
	return func(ce *CalculationEngine) { ce.strict = strict }
}

// WithLogger sets the engine logger. A nil logger keeps the no-op default.
func WithLogger(l Logger) Option {
	return func(ce *CalculationEngine) { ce.SetLogger(l) }
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine(opts ...Option) *CalculationEngine {
	ce := &CalculationEngine{Logger: NopLogger{}}
	for _, opt := range opts {
		opt(ce)
	}
	return ce
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// IsStrict reports whether the strict error policy is active.
func (ce *CalculationEngine) IsStrict() bool { return ce.strict }

// WithStrictMode returns a copy of the engine using the given policy.
func (ce *CalculationEngine) WithStrictMode(strict bool) *CalculationEngine {
	cp := *ce
	cp.strict = strict
	return &cp
}

// Wacc runs the WACC calculator under the engine policy.
func (ce *CalculationEngine) Wacc(in domain.WaccInputs) (domain.WaccResult, error) {
	if err := precheck(ce, ValidateWACC, in); err != nil {
		return domain.WaccResult{}, err
	}
	res := CalculateWACC(in)
	if err := ce.postcheck(domain.CalculatorWACC, res.NonFinite()); err != nil {
		return domain.WaccResult{}, err
	}
	ce.Logger.Debugf("wacc: total_value=%.2f wacc=%.2f%%", res.TotalValue, res.Wacc)
	return res, nil
}

// Dilution runs the dilution calculator under the engine policy.
func (ce *CalculationEngine) Dilution(in domain.DilutionInputs) (domain.DilutionResult, error) {
	if err := precheck(ce, ValidateDilution, in); err != nil {
		return domain.DilutionResult{}, err
	}
	res := CalculateDilution(in)
	if err := ce.postcheck(domain.CalculatorDilution, res.NonFinite()); err != nil {
		return domain.DilutionResult{}, err
	}
	ce.Logger.Debugf("dilution: price=%.2f new_shares=%.0f ownership_post=%.2f%%", res.PricePerShare, res.NewShares, res.OwnershipPost)
	return res, nil
}

// DebtStack runs the debt-stack calculator under the engine policy.
func (ce *CalculationEngine) DebtStack(in domain.DebtStackInputs) (domain.DebtStackResult, error) {
	if err := precheck(ce, ValidateDebtStack, in); err != nil {
		return domain.DebtStackResult{}, err
	}
	res := CalculateDebtStack(in)
	if err := ce.postcheck(domain.CalculatorDebtStack, res.NonFinite()); err != nil {
		return domain.DebtStackResult{}, err
	}
	ce.Logger.Debugf("debt_stack: total_debt=%.2f leverage=%.2fx coverage=%.2fx", res.TotalDebt, res.TotalLeverageRatio, res.InterestCoverage)
	return res, nil
}

// Sensitivity builds the sensitivity table under the engine policy.
func (ce *CalculationEngine) Sensitivity(wacc float64) ([]domain.SensitivityScenario, error) {
	if err := precheck(ce, ValidateSensitivity, wacc); err != nil {
		return nil, err
	}
	if !decimal.IsFinite(wacc) {
		ce.Logger.Warnf("sensitivity: non-finite base wacc %v", wacc)
	}
	return GenerateSensitivity(wacc), nil
}

// Run computes every calculator over one workbook. Each calculator is
// independent: a failure is recorded in Report.Errors and the rest still run.
// The sensitivity table is derived from the WACC result and is skipped when
// WACC fails. Run returns an error only for a nil workbook or a cancelled context.
func (ce *CalculationEngine) Run(ctx context.Context, cfg *domain.Configuration) (*domain.Report, error) {
	if cfg == nil {
		return nil, errors.New("nil configuration")
	}
	report := &domain.Report{Inputs: *cfg}

	steps := []struct {
		name string
		run  func() error
	}{
		{domain.CalculatorWACC, func() error {
			res, err := ce.Wacc(cfg.Wacc)
			if err == nil {
				report.Wacc = &res
			}
			return err
		}},
		{domain.CalculatorSensitivity, func() error {
			if report.Wacc == nil {
				return errNoBaseWacc
			}
			rows, err := ce.Sensitivity(report.Wacc.Wacc)
			if err == nil {
				report.Sensitivity = rows
			}
			return err
		}},
		{domain.CalculatorDilution, func() error {
			res, err := ce.Dilution(cfg.Dilution)
			if err == nil {
				report.Dilution = &res
			}
			return err
		}},
		{domain.CalculatorDebtStack, func() error {
			res, err := ce.DebtStack(cfg.DebtStack)
			if err == nil {
				report.DebtStack = &res
			}
			return err
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			ce.Logger.Errorf("run cancelled before %s: %v", step.name, err)
			return nil, fmt.Errorf("run cancelled before %s: %w", step.name, err)
		}
		if err := step.run(); err != nil {
			ce.Logger.Warnf("%s: %v", step.name, err)
			if report.Errors == nil {
				report.Errors = make(map[string]string)
			}
			report.Errors[step.name] = err.Error()
		}
	}
	ce.Logger.Infof("run complete: %d calculators, %d failed", len(steps), len(report.Errors))
	return report, nil
}

// precheck runs validate only in strict mode.
func precheck[T any](ce *CalculationEngine, validate func(T) error, in T) error {
	if !ce.strict {
		return nil
	}
	return validate(in)
}

// postcheck guards against overflow in strict mode and logs non-finite fields otherwise.
func (ce *CalculationEngine) postcheck(calculator string, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	if ce.strict {
		return &CalcError{Calculator: calculator, Field: fields[0], Err: ErrInvalidRange}
	}
	ce.Logger.Warnf("%s: non-finite result fields %v", calculator, fields)
	return nil
}
