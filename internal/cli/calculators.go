package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/corpfin-calculator/internal/calculation"
	"github.com/rpgo/corpfin-calculator/internal/domain"
)

func newWaccCmd(app *App) *cobra.Command {
	in := domain.DefaultWaccInputs()
	var withSensitivity bool

	cmd := &cobra.Command{
		Use:   "wacc",
		Short: "Weighted average cost of capital",
		Example: `  corpfin wacc
  corpfin wacc --equity 600000000 --debt 150000000 --tax-rate 21
  corpfin wacc --sensitivity --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Engine.Wacc(in)
			if err != nil {
				return err
			}
			report := &domain.Report{Inputs: domain.DefaultConfiguration(), Wacc: &res}
			report.Inputs.Wacc = in
			if withSensitivity {
				rows, err := app.Engine.Sensitivity(res.Wacc)
				if err != nil {
					return err
				}
				report.Sensitivity = rows
			}
			return app.render(cmd, report)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.MarketValueEquity, "equity", in.MarketValueEquity, "market value of equity")
	f.Float64Var(&in.MarketValueDebt, "debt", in.MarketValueDebt, "market value of debt")
	f.Float64Var(&in.CostOfEquity, "cost-of-equity", in.CostOfEquity, "cost of equity (%)")
	f.Float64Var(&in.CostOfDebt, "cost-of-debt", in.CostOfDebt, "pre-tax cost of debt (%)")
	f.Float64Var(&in.TaxRate, "tax-rate", in.TaxRate, "corporate tax rate (%)")
	f.Float64Var(&in.RiskFreeRate, "risk-free-rate", in.RiskFreeRate, "risk-free rate (%)")
	f.Float64Var(&in.Beta, "beta", in.Beta, "equity beta")
	f.Float64Var(&in.MarketRiskPremium, "market-risk-premium", in.MarketRiskPremium, "market risk premium (%)")
	f.BoolVar(&withSensitivity, "sensitivity", false, "append the sensitivity table")
	return cmd
}

func newDilutionCmd(app *App) *cobra.Command {
	in := domain.DefaultDilutionInputs()

	cmd := &cobra.Command{
		Use:   "dilution",
		Short: "Equity dilution of a priced funding round",
		Example: `  corpfin dilution
  corpfin dilution --fundraise 75000000 --pre-money 425000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Engine.Dilution(in)
			if err != nil {
				return err
			}
			report := &domain.Report{Inputs: domain.DefaultConfiguration(), Dilution: &res}
			report.Inputs.Dilution = in
			return app.render(cmd, report)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&in.CurrentShares, "shares", in.CurrentShares, "shares outstanding before the round")
	f.Float64Var(&in.CurrentValuation, "valuation", in.CurrentValuation, "current valuation")
	f.Float64Var(&in.FundraiseAmount, "fundraise", in.FundraiseAmount, "amount raised")
	f.Float64Var(&in.PreMoneyValuation, "pre-money", in.PreMoneyValuation, "pre-money valuation")
	f.Float64Var(&in.LiquidationPreference, "liquidation-preference", in.LiquidationPreference, "liquidation preference multiple")
	f.BoolVar(&in.ParticipationRights, "participation", in.ParticipationRights, "investors have participation rights")
	f.BoolVar(&in.ProRataRights, "pro-rata", in.ProRataRights, "investors have pro-rata rights")
	return cmd
}

func newDebtCmd(app *App) *cobra.Command {
	in := domain.DefaultDebtStackInputs()
	var amounts, rates, maturities []float64
	var seniorities []string

	cmd := &cobra.Command{
		Use:     "debt",
		Aliases: []string{"debt-stack"},
		Short:   "Debt-stack leverage and coverage",
		Long: fmt.Sprintf(`Evaluate the five-tranche debt stack.

Per-tranche flags take exactly %d comma-separated values in stack order:
%s, %s, %s, %s, %s.`, domain.TrancheCount,
			domain.TrancheNames[0], domain.TrancheNames[1], domain.TrancheNames[2], domain.TrancheNames[3], domain.TrancheNames[4]),
		Example: `  corpfin debt --ebitda 95000000
  corpfin debt --amounts 0,120e6,150e6,100e6,50e6 --rates 6,7,7.5,8.5,11`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if err := applyTrancheFloats(f.Changed("amounts"), "amounts", amounts, &in, func(t *domain.DebtTranche, v float64) { t.Amount = v }); err != nil {
				return err
			}
			if err := applyTrancheFloats(f.Changed("rates"), "rates", rates, &in, func(t *domain.DebtTranche, v float64) { t.Rate = v }); err != nil {
				return err
			}
			if err := applyTrancheFloats(f.Changed("maturities"), "maturities", maturities, &in, func(t *domain.DebtTranche, v float64) { t.Maturity = v }); err != nil {
				return err
			}
			if f.Changed("seniority") {
				if err := checkTrancheCount("seniority", len(seniorities)); err != nil {
					return err
				}
				for i, s := range seniorities {
					class, err := domain.ParseSeniorityClass(s)
					if err != nil {
						return fmt.Errorf("--seniority: %w", err)
					}
					in.Tranches[i].Seniority = class
				}
			}

			res, err := app.Engine.DebtStack(in)
			if err != nil {
				return err
			}
			report := &domain.Report{Inputs: domain.DefaultConfiguration(), DebtStack: &res}
			report.Inputs.DebtStack = in
			return app.render(cmd, report)
		},
	}

	f := cmd.Flags()
	f.Float64SliceVar(&amounts, "amounts", nil, "tranche amounts")
	f.Float64SliceVar(&rates, "rates", nil, "tranche interest rates (%)")
	f.Float64SliceVar(&maturities, "maturities", nil, "tranche maturities (years)")
	f.StringSliceVar(&seniorities, "seniority", nil, "tranche seniority classes (senior_secured, senior_unsecured, subordinated)")
	f.Float64Var(&in.Ebitda, "ebitda", in.Ebitda, "EBITDA")
	f.Float64Var(&in.FreeCashFlow, "free-cash-flow", in.FreeCashFlow, "free cash flow (reported only)")
	return cmd
}

func checkTrancheCount(flag string, n int) error {
	if n != domain.TrancheCount {
		return fmt.Errorf("--%s needs exactly %d values, got %d", flag, domain.TrancheCount, n)
	}
	return nil
}

func applyTrancheFloats(changed bool, flag string, values []float64, in *domain.DebtStackInputs, set func(*domain.DebtTranche, float64)) error {
	if !changed {
		return nil
	}
	if err := checkTrancheCount(flag, len(values)); err != nil {
		return err
	}
	for i, v := range values {
		set(&in.Tranches[i], v)
	}
	return nil
}

func newSensitivityCmd(app *App) *cobra.Command {
	wacc := calculation.CalculateWACC(domain.DefaultWaccInputs()).Wacc

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "WACC sensitivity table (base, -1.2, -0.6, +0.6, +1.2 points)",
		Example: `  corpfin sensitivity
  corpfin sensitivity --wacc 8.5 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Engine.Sensitivity(wacc)
			if err != nil {
				return err
			}
			return app.render(cmd, &domain.Report{Inputs: domain.DefaultConfiguration(), Sensitivity: rows})
		},
	}

	cmd.Flags().Float64Var(&wacc, "wacc", wacc, "base WACC (%)")
	return cmd
}
