// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/logger"
)

var (
	configPath string // Path to the configuration directory
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:   "newtab",
		Short: "newtab serves a customizable browser new tab page",
		Long: `newtab serves a customizable browser new tab page with bookmarks,
a search box and a small Russian learning hub. Settings and bookmarks are
kept in a database and can be exported and imported as JSON.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		config.DefaultPath,
		"Directory containing main.toml",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and sets up logging. Commands call it
// from their PreRunE.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error
	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	return logger.Init(cfg.Log)
}
