package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/x4fyr/paiman/internal/app"
	"github.com/x4fyr/paiman/internal/config"
	"github.com/x4fyr/paiman/internal/logging"
)

var (
	configPath string

	cfg    config.Config
	logger *zap.Logger
	appCtx *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "paiman",
		Short:         "Painting collection manager (headless)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg)
			if err != nil {
				return err
			}
			appCtx, err = app.New(cfg, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(runCmd(), graphCmd())
	return root
}
