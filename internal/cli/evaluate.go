package cli

import (
	"io"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"

	"github.com/spf13/cobra"
)

// EvaluateOutput is the JSON form of one evaluation.
type EvaluateOutput struct {
	Scenario  string                    `json:"scenario,omitempty"`
	Inputs    model.PolicyInputs        `json:"inputs"`
	Result    model.EquilibriumResult   `json:"result"`
	Deltas    model.Deltas              `json:"deltas"`
	Narrative []string                  `json:"narrative"`
	Shocks    []analysis.ShockComponent `json:"shocks"`
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		flags  inputFlags
		width  int
		chart  bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one policy scenario",
		Long: `Evaluate the model for one set of policy inputs and print the new
equilibrium, the narrative and the underlying shock breakdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.Logger()
			defer func() { _ = log.Sync() }()

			in, name, err := flags.resolve(cmd, log)
			if err != nil {
				return err
			}
			return runEvaluate(cmd.OutOrStdout(), rootOpts.Format, name, in, evaluateView{
				width:  width,
				chart:  chart,
				pretty: pretty,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 80, "terminal width for wrapped output")
	cmd.Flags().BoolVar(&chart, "chart", true, "include the ASCII IS-LM chart in text output")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render markdown output for the terminal")

	return cmd
}

type evaluateView struct {
	width  int
	chart  bool
	pretty bool
}

func runEvaluate(w io.Writer, format, name string, in model.PolicyInputs, view evaluateView) error {
	res := model.Evaluate(in)

	switch format {
	case "json":
		return writeJSON(w, EvaluateOutput{
			Scenario:  name,
			Inputs:    in,
			Result:    res,
			Deltas:    res.Deltas(),
			Narrative: analysis.Narrative(in, res),
			Shocks:    analysis.ShockBreakdown(in, res),
		})

	case "markdown":
		md := render.Markdown(in, res)
		if !view.pretty {
			_, err := io.WriteString(w, md)
			return err
		}
		out, err := render.Terminal(md, view.width)
		if err != nil {
			return WrapExitError(ExitFailure, "render report", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}

	blocks := []string{}
	if name != "" {
		blocks = append(blocks, "Scenario: "+name)
	}
	blocks = append(blocks,
		render.MetricsTable(render.Metrics(res)),
		"",
		analysis.NarrativeText(in, res),
		"",
	)
	if view.chart {
		blocks = append(blocks, render.ASCIIChart(curve.Sample(res), res, max(40, view.width-20), 20), "")
	}
	blocks = append(blocks, render.ShockTable(analysis.ShockBreakdown(in, res)))
	return writeLines(w, blocks...)
}
