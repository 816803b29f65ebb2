package cli

import (
	"io"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/render"

	"github.com/spf13/cobra"
)

// NewCoefficientsCommand creates the coefficients command.
func NewCoefficientsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "coefficients",
		Short: "Show the model coefficient glossary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoefficients(cmd.OutOrStdout(), rootOpts.Format)
		},
	}
}

func runCoefficients(w io.Writer, format string) error {
	rows := analysis.CoefficientGlossary()
	switch format {
	case "json":
		return writeJSON(w, rows)
	case "markdown":
		_, err := io.WriteString(w, render.CoefficientMarkdown(rows))
		return err
	}
	return writeLines(w, render.CoefficientTable(rows))
}
