// Package cli provides the corpfin command-line interface.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rpgo/corpfin-calculator/internal/calculation"
	"github.com/rpgo/corpfin-calculator/internal/config"
	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/internal/logging"
	"github.com/rpgo/corpfin-calculator/internal/output"
)

// Version is set at build time.
var Version = "0.1.0"

// App holds the dependencies shared by every command. It is populated in the
// root command's PersistentPreRunE.
type App struct {
	Settings *config.Settings
	Logger   zerolog.Logger
	Engine   *calculation.CalculationEngine
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd() *cobra.Command {
	app := &App{Logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "corpfin",
		Short: "Corporate finance calculators: WACC, dilution, debt stack, sensitivity",
		Long: `corpfin computes the weighted average cost of capital, equity dilution of a
funding round, debt-stack leverage and coverage, and a WACC sensitivity table.

Every calculator starts from a default scenario; flags override single inputs.
Use 'corpfin run --input workbook.yaml' to evaluate a full workbook and
'corpfin example' to write one to start from.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "settings file (default: ./corpfin.yaml or ~/.config/corpfin/corpfin.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("strict", false, "reject degenerate inputs instead of producing NaN or Inf")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format (default from settings: console)")

	rootCmd.AddCommand(newWaccCmd(app))
	rootCmd.AddCommand(newDilutionCmd(app))
	rootCmd.AddCommand(newDebtCmd(app))
	rootCmd.AddCommand(newSensitivityCmd(app))
	rootCmd.AddCommand(newRunCmd(app))
	rootCmd.AddCommand(newExampleCmd(app))
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newServeCmd(app))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// init loads settings and builds the logger and engine.
func (app *App) init(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	settings, err := config.LoadSettings(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("strict") {
		settings.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("format") {
		settings.Output.Format, _ = cmd.Flags().GetString("format")
	}

	logCfg := settings.LogConfig()
	logCfg.Out = cmd.ErrOrStderr()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
	}

	app.Settings = settings
	app.Logger = logging.NewLoggerWithConfig(logCfg)
	app.Engine = calculation.NewCalculationEngine(
		calculation.WithStrict(settings.Strict),
		calculation.WithLogger(logging.CalcLogger{L: app.Logger}),
	)
	app.Logger.Debug().
		Bool("strict", settings.Strict).
		Str("format", settings.Output.Format).
		Msg("settings loaded")
	return nil
}

// render writes the report to stdout in the configured format.
func (app *App) render(cmd *cobra.Command, report *domain.Report) error {
	data, err := output.Render(report, app.Settings.Output.Format)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
