package cli

import (
	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"

	"github.com/spf13/cobra"
)

// RankOutput is the JSON form of one ranked policy mix.
type RankOutput struct {
	Rank           int                     `json:"rank"`
	FiscalResponse model.FiscalResponse    `json:"fiscal_response"`
	MonetaryPolicy model.MonetaryPolicy    `json:"monetary_policy"`
	Result         model.EquilibriumResult `json:"result"`
}

// NewRankCommand creates the rank command.
func NewRankCommand(rootOpts *RootOptions) *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every fiscal/monetary policy mix by output",
		Long: `Hold the tariff shock and demand drag fixed, evaluate all nine fiscal x
monetary combinations and list them from highest to lowest output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.Logger()
			defer func() { _ = log.Sync() }()

			in, _, err := flags.resolve(cmd, log)
			if err != nil {
				return err
			}
			mixes := analysis.RankPolicyMixes(in.TariffShock, in.ADContraction)

			if rootOpts.Format == "json" {
				out := make([]RankOutput, len(mixes))
				for i, m := range mixes {
					out[i] = RankOutput{
						Rank:           i + 1,
						FiscalResponse: m.Inputs.Fiscal,
						MonetaryPolicy: m.Inputs.Monetary,
						Result:         m.Result,
					}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeLines(cmd.OutOrStdout(), render.RankTable(mixes))
		},
	}

	flags.register(cmd)
	return cmd
}
