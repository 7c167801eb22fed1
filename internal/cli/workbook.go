package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/corpfin-calculator/internal/config"
	"github.com/rpgo/corpfin-calculator/internal/output"
)

func newRunCmd(app *App) *cobra.Command {
	var input, dir string
	var write bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every calculator over a YAML workbook",
		Long: `Evaluate every calculator over a YAML workbook.

Each calculator runs independently. In strict mode a failing calculator is
listed in the report's errors and the command exits non-zero after the report
is written.`,
		Example: `  corpfin run --input workbook.yaml
  corpfin run --input workbook.yaml --format all --write --dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return err
			}

			report, err := app.Engine.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if write {
				if !cmd.Flags().Changed("dir") {
					dir = app.Settings.Output.Dir
				}
				paths, err := output.GenerateReport(report, app.Settings.Output.Format, dir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					app.Logger.Info().Str("path", p).Msg("report written")
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
			} else if err := app.render(cmd, report); err != nil {
				return err
			}

			if report.HasErrors() {
				names := make([]string, 0, len(report.Errors))
				for name := range report.Errors {
					names = append(names, name)
				}
				sort.Strings(names)
				return fmt.Errorf("calculators failed: %s", strings.Join(names, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "workbook YAML file")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write report files instead of printing")
	cmd.Flags().StringVar(&dir, "dir", "", "directory for written reports (default from settings)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newExampleCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write the default workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg := parser.CreateExampleConfiguration()
			if out == "" {
				data, err := parser.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := parser.SaveConfiguration(cfg, out); err != nil {
				return err
			}
			app.Logger.Info().Str("path", out).Msg("example workbook written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "file to write (default: stdout)")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %-14s .%s\n", name, output.Extension(name))
			}
			fmt.Fprintln(w, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %-14s -> %s\n", alias, output.AliasTarget(alias))
			}
		},
	}
}
