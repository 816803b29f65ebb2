package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mundell-fleming/internal/api"
	"mundell-fleming/internal/config"
	"mundell-fleming/internal/logger"

	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		settingsPath string
		port         string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and calculator page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(settingsPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load settings", err)
			}
			logLevel := ""
			if cmd.Flags().Changed("log-level") {
				logLevel = rootOpts.LogLevel
			}
			applyServeFlags(settings, port, logLevel)
			if err := settings.Validate(); err != nil {
				return WrapExitError(ExitCommandError, "invalid settings", err)
			}

			log := logger.New(settings.Log.Level, settings.Log.Format)
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := api.Serve(ctx, settings, log); err != nil {
				return WrapExitError(ExitFailure, "serve", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&settingsPath, "settings", "", "settings YAML (default: configs/settings.yaml if present)")
	cmd.Flags().StringVar(&port, "port", "", "listen port, overrides api.port")
	return cmd
}

// applyServeFlags lays command-line overrides over the loaded settings. Empty
// values leave the setting alone.
func applyServeFlags(settings *config.Settings, port, logLevel string) {
	if port != "" {
		settings.API.Port = port
	}
	if logLevel != "" {
		settings.Log.Level = logLevel
	}
}
