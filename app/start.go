package app

import (
	"github.com/spf13/cobra"

	"github.com/newtab-go/newtab/internal/daemon"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	startCmd.Flags().BoolVar(&watchConfig, "watch", true, "Reload the log level when main.toml changes")

	rootCmd.AddCommand(startCmd)
}

var (
	devMode      bool
	browseStatic bool
	watchConfig  bool

	startCmd = &cobra.Command{
		Use:     "start",
		Short:   "Start the new tab web service",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if devMode {
				cfg.DevMode = true
			}

			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			if watchConfig {
				if err = d.WatchConfig(configPath); err != nil {
					return err
				}
			}

			return d.Start(cmd.Context())
		},
	}
)
