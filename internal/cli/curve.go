package cli

import (
	"fmt"

	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/model"

	"github.com/spf13/cobra"
)

// NewCurveCommand creates the curve command.
func NewCurveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		flags inputFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Export the sampled IS and LM curves",
		Long: `Sample the shifted IS and LM curves on 100 evenly spaced output levels
between 95 and 105 and write them as CSV (or JSON with --format json).
Use --out - to write to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.Logger()
			defer func() { _ = log.Sync() }()

			in, _, err := flags.resolve(cmd, log)
			if err != nil {
				return err
			}
			points := curve.Sample(model.Evaluate(in))

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), points)
			}
			if out == "-" {
				return curve.WriteCSV(cmd.OutOrStdout(), points)
			}
			if err := curve.WriteCSVFile(out, points); err != nil {
				return WrapExitError(ExitFailure, "write curve", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d points to %s\n", len(points), out)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "results/curve.csv", "output CSV path, - for stdout")

	return cmd
}
