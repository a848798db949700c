package main

import (
	"log/slog"
	"os"

	"github.com/framemaker/reelsite/internal/config"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "reelsite",
		Short:         "Serve a single-page VFX showreel portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "reelsite.yml", "config file path")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "text logs at debug level")

	root.AddCommand(
		newServeCmd(opts),
		newRenderCmd(opts),
		newUploadCmd(opts),
		newInitCmd(opts),
	)
	return root
}

// loadConfig reads and validates the config, then installs the default logger.
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.SetDefault(newLogger(cfg.Server.LogFormat, o.debug))
	return cfg, nil
}

func newLogger(format string, debug bool) *slog.Logger {
	if debug {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
