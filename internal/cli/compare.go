package cli

import (
	"fmt"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/data"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"

	"github.com/spf13/cobra"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		flags inputFlags
		dir   string
	)

	cmd := &cobra.Command{
		Use:   "compare <scenario-id>...",
		Short: "Compare preset scenarios against a base",
		Long: `Evaluate the base inputs (flags or --config) and each named preset from
the scenarios directory, and show their outcomes side by side.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.Logger()
			defer func() { _ = log.Sync() }()

			base, _, err := flags.resolve(cmd, log)
			if err != nil {
				return err
			}

			variations := make([]analysis.Variation, 0, len(args))
			for _, id := range args {
				sc, err := data.FindScenario(dir, id)
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("scenario %s", id), err)
				}
				variations = append(variations, analysis.Variation{Name: sc.ID, Override: fullOverride(sc.Inputs)})
			}

			rows, err := analysis.Compare(base, variations)
			if err != nil {
				return WrapExitError(ExitCommandError, "compare", err)
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return writeLines(cmd.OutOrStdout(), render.ComparisonTable(rows))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", "./scenarios", "directory of scenario presets")
	return cmd
}

// fullOverride pins every field, so a preset replaces the base entirely.
func fullOverride(in model.PolicyInputs) model.InputOverride {
	return model.InputOverride{
		TariffShock:   &in.TariffShock,
		ADContraction: &in.ADContraction,
		Fiscal:        &in.Fiscal,
		Monetary:      &in.Monetary,
	}
}
