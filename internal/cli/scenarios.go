package cli

import (
	"fmt"

	"mundell-fleming/internal/data"
	"mundell-fleming/internal/logger"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewScenariosCommand creates the scenarios command.
func NewScenariosCommand(rootOpts *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the shipped scenario presets",
		Long: `List the read-only YAML presets in the scenarios directory. Any preset
can be passed to evaluate through a run config's scenario_file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(rootOpts.LogLevel, "console")
			defer func() { _ = log.Sync() }()

			scenarios, skipped, err := data.ListScenarios(dir)
			if err != nil {
				return WrapExitError(ExitCommandError, "list scenarios", err)
			}
			for _, s := range skipped {
				log.Warn("skipping invalid scenario", zap.String("file", s.File), zap.Error(s.Err))
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), scenarios)
			}
			if len(scenarios) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no scenarios in %s\n", dir)
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "Name", "Tariff", "AD Drag", "Fiscal", "Monetary")
			for _, s := range scenarios {
				t.Row(
					s.ID,
					s.Name,
					fmt.Sprintf("%.1f", s.Inputs.TariffShock),
					fmt.Sprintf("%.1f", s.Inputs.ADContraction),
					string(s.Inputs.Fiscal),
					string(s.Inputs.Monetary),
				)
			}
			return writeLines(cmd.OutOrStdout(), t.String())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./scenarios", "directory of scenario presets")
	return cmd
}
