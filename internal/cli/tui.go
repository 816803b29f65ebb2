package cli

import (
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"
	"mundell-fleming/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.Logger()
			defer func() { _ = log.Sync() }()

			in, _, err := flags.resolve(cmd, log)
			if err != nil {
				return err
			}
			final, err := tui.Run(in,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return WrapExitError(ExitFailure, "tui", err)
			}
			return writeLines(cmd.OutOrStdout(), render.MetricsLine(render.Metrics(model.Evaluate(final))))
		},
	}

	flags.register(cmd)
	return cmd
}
