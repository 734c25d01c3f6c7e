package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"libprime/internal/app"
)

var (
	configPath string
	backend    string
	libPath    string
	remoteURL  string
	verbose    bool

	cfg    app.Config
	logger *zap.Logger
	wire   *app.Wire
)

// noBackend marks subcommands that only need the config, not a loaded oracle.
const noBackend = "no-backend"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "primecheck",
		Short:        "Ask the libprime oracle whether numbers are prime",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			wire = nil
			var err error
			cfg, err = app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("backend") {
				cfg.Backend = backend
			}
			if flags.Changed("lib") {
				cfg.Library = libPath
				if !flags.Changed("backend") {
					cfg.Backend = app.BackendFFI
				}
			}
			if flags.Changed("remote") {
				cfg.Remote = remoteURL
				if !flags.Changed("backend") {
					cfg.Backend = app.BackendRemote
				}
			}

			logger, err = app.NewLogger(cfg.LogLevel, verbose)
			if err != nil {
				return err
			}
			if _, skip := cmd.Annotations[noBackend]; skip {
				return cfg.Validate()
			}
			wire, err = app.NewWire(cfg, logger)
			if err != nil {
				return err
			}
			logger.Debug("backend ready", zap.String("backend", cfg.Backend))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if wire != nil {
				err = wire.Close()
			}
			if logger != nil {
				_ = logger.Sync()
			}
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&backend, "backend", app.BackendNative, "oracle backend: native, ffi or remote")
	root.PersistentFlags().StringVar(&libPath, "lib", "", "shared library path (implies --backend ffi)")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "primed base URL (implies --backend remote)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(checkCmd(), scanCmd(), fingerprintCmd())
	return root
}
