// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/open-notebook/open-notebook-web/internal/config"
)

var (
	configPath string        // Path to the configuration directory
	cfg        config.Config //nolint:gochecknoglobals

	rootCmd = &cobra.Command{
		Use:   "open-notebook-web",
		Short: "Open Notebook web shell",
		Long: `Open Notebook web shell serves the navigation sidebar and page chrome
of Open Notebook: sign in, collapsible navigation, quick actions and theme switching.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
