package cli

import (
	"mundell-fleming/internal/config"
	"mundell-fleming/internal/logger"
	"mundell-fleming/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inputFlags are the shared policy-input flags. Flags that were set on the
// command line override the --config scenario, which overrides the defaults.
type inputFlags struct {
	tariff   float64
	ad       float64
	fiscal   string
	monetary string
	config   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	d := model.DefaultInputs()
	cmd.Flags().Float64Var(&f.tariff, "tariff", d.TariffShock, "tariff shock as % of GDP (0-5)")
	cmd.Flags().Float64Var(&f.ad, "ad", d.ADContraction, "aggregate demand drag as % of GDP (0-5)")
	cmd.Flags().StringVar(&f.fiscal, "fiscal", string(d.Fiscal), "fiscal response (neutral|debt_paydown|tax_cut)")
	cmd.Flags().StringVar(&f.monetary, "monetary", string(d.Monetary), "monetary policy (neutral|ease|tighten)")
	cmd.Flags().StringVar(&f.config, "config", "", "YAML run config with a scenario or scenario_file")
}

func (f *inputFlags) resolve(cmd *cobra.Command, log *zap.Logger) (model.PolicyInputs, string, error) {
	in := model.DefaultInputs()
	name := ""
	if f.config != "" {
		cfg, err := config.Load(f.config)
		if err != nil {
			return in, "", WrapExitError(ExitCommandError, "load config", err)
		}
		if in, err = cfg.Scenario.Inputs(); err != nil {
			return in, "", WrapExitError(ExitCommandError, "load config", err)
		}
		name = cfg.Scenario.Name
		log.Debug("loaded run config",
			zap.String("path", f.config),
			zap.String("scenario", name),
			zap.String("scenario_file", cfg.ScenarioFile),
		)
	}

	var o model.InputOverride
	if cmd.Flags().Changed("tariff") {
		o.TariffShock = &f.tariff
	}
	if cmd.Flags().Changed("ad") {
		o.ADContraction = &f.ad
	}
	if cmd.Flags().Changed("fiscal") {
		fr, err := model.ParseFiscalResponse(f.fiscal)
		if err != nil {
			return in, "", WrapExitError(ExitCommandError, "invalid --fiscal", err)
		}
		o.Fiscal = &fr
	}
	if cmd.Flags().Changed("monetary") {
		mp, err := model.ParseMonetaryPolicy(f.monetary)
		if err != nil {
			return in, "", WrapExitError(ExitCommandError, "invalid --monetary", err)
		}
		o.Monetary = &mp
	}

	in = o.Apply(in)
	if err := in.Validate(); err != nil {
		return in, "", WrapExitError(ExitCommandError, "invalid inputs", err)
	}
	log.Debug("resolved inputs", append([]zap.Field{
		zap.Float64("tariff_shock", in.TariffShock),
		zap.Float64("ad_contraction", in.ADContraction),
	}, logger.PolicyFields(string(in.Fiscal), string(in.Monetary))...)...)
	return in, name, nil
}
