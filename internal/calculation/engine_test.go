package calculation

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu     sync.Mutex
	debug  []string
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func TestNewCalculationEngine_Options(t *testing.T) {
	ce := NewCalculationEngine()
	assert.False(t, ce.IsStrict())
	assert.IsType(t, NopLogger{}, ce.Logger)

	log := &recordingLogger{}
	strict := NewCalculationEngine(WithStrict(true), WithLogger(log))
	assert.True(t, strict.IsStrict())
	assert.Same(t, log, strict.Logger)

	lenient := strict.WithStrictMode(false)
	assert.False(t, lenient.IsStrict())
	assert.True(t, strict.IsStrict(), "copy must not change the original")

	strict.SetLogger(nil)
	assert.IsType(t, NopLogger{}, strict.Logger)
}

func TestEngine_LenientPropagatesNonFinite(t *testing.T) {
	log := &recordingLogger{}
	ce := NewCalculationEngine(WithLogger(log))

	in := domain.DefaultWaccInputs()
	in.MarketValueEquity, in.MarketValueDebt = 0, 0
	res, err := ce.Wacc(in)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res.Wacc))
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "wacc")

	rows, err := ce.Sensitivity(res.Wacc)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Len(t, log.warns, 2)
}

func TestEngine_StrictReturnsTypedErrors(t *testing.T) {
	ce := NewCalculationEngine(WithStrict(true))

	w := domain.DefaultWaccInputs()
	w.MarketValueEquity, w.MarketValueDebt = 0, 0
	_, err := ce.Wacc(w)
	assert.ErrorIs(t, err, ErrDivideByZero)

	d := domain.DefaultDilutionInputs()
	d.CurrentShares = -1
	_, err = ce.Dilution(d)
	var calcErr *CalcError
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, "invalid_range", calcErr.Kind())
	assert.Equal(t, "dilution: current_shares: invalid range", calcErr.Error())

	s := domain.DefaultDebtStackInputs()
	s.Ebitda = 0
	_, err = ce.DebtStack(s)
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, "divide_by_zero", calcErr.Kind())
	assert.Equal(t, "ebitda", calcErr.Field)

	_, err = ce.Sensitivity(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestEngine_StrictRejectsOverflow(t *testing.T) {
	ce := NewCalculationEngine(WithStrict(true))
	in := domain.DefaultDebtStackInputs()
	in.Tranches[0].Amount = math.MaxFloat64
	in.Tranches[1].Amount = math.MaxFloat64

	_, err := ce.DebtStack(in)
	var calcErr *CalcError
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, "total_debt", calcErr.Field)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestEngine_StrictAcceptsDefaults(t *testing.T) {
	ce := NewCalculationEngine(WithStrict(true))
	report, err := ce.Run(context.Background(), ptr(domain.DefaultConfiguration()))
	require.NoError(t, err)
	assert.False(t, report.HasErrors())
	require.NotNil(t, report.Wacc)
	require.NotNil(t, report.Dilution)
	require.NotNil(t, report.DebtStack)
	assert.Equal(t, 10.21, report.Wacc.Wacc)
	assert.Equal(t, report.Wacc.Wacc, report.Sensitivity[0].Wacc)
	assert.Equal(t, 10.0, report.Dilution.DilutionPercent)
	assert.Equal(t, 5.31, report.DebtStack.TotalLeverageRatio)
}

func TestEngine_RunIsolatesFailures(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.Dilution.CurrentShares = 0

	log := &recordingLogger{}
	report, err := NewCalculationEngine(WithStrict(true), WithLogger(log)).Run(context.Background(), &cfg)
	require.NoError(t, err)

	assert.Nil(t, report.Dilution)
	assert.Contains(t, report.Errors[domain.CalculatorDilution], "divide by zero")
	assert.NotNil(t, report.Wacc)
	assert.Len(t, report.Sensitivity, 5)
	assert.NotNil(t, report.DebtStack)
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, cfg, report.Inputs)
	assert.Equal(t, []string{"run complete: 4 calculators, 1 failed"}, log.infos)
}

func TestEngine_RunSkipsSensitivityWithoutWacc(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.Wacc.TaxRate = -1

	report, err := NewCalculationEngine(WithStrict(true)).Run(context.Background(), &cfg)
	require.NoError(t, err)
	assert.Nil(t, report.Wacc)
	assert.Nil(t, report.Sensitivity)
	assert.Contains(t, report.Errors, domain.CalculatorWACC)
	assert.Contains(t, report.Errors, domain.CalculatorSensitivity)
}

func TestEngine_RunHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	log := &recordingLogger{}
	_, err := NewCalculationEngine(WithLogger(log)).Run(ctx, ptr(domain.DefaultConfiguration()))
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "run cancelled before wacc")
	assert.Empty(t, log.infos)

	_, err = NewCalculationEngine().Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestEngine_ConcurrentCallsAreIndependent(t *testing.T) {
	ce := NewCalculationEngine()
	want, err := ce.Run(context.Background(), ptr(domain.DefaultConfiguration()))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*domain.Report, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = ce.Run(context.Background(), ptr(domain.DefaultConfiguration()))
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func ptr[T any](v T) *T { return &v }
