package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/sidebar"
	"github.com/open-notebook/open-notebook-web/internal/sidebar/termview"
)

func init() { //nolint: gochecknoinits
	renderCmd.Flags().StringVar(&renderPath, "path", "/notebooks", "Current path the sidebar is rendered for")
	renderCmd.Flags().BoolVar(&renderCollapsed, "collapsed", false, "Render the collapsed sidebar")
	renderCmd.Flags().StringVar(&renderPlatform, "platform", "", "Platform for the shortcut label (mac or other), detected when empty")
	renderCmd.Flags().StringVar(&renderTheme, "theme", string(sidebar.ThemeSystem), "Theme shown by the theme toggle")

	rootCmd.AddCommand(renderCmd)
}

var (
	renderPath      string
	renderCollapsed bool
	renderPlatform  string
	renderTheme     string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Print the navigation sidebar to the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				// the preview works without a config file
				c = config.Config{}
				c.Brand.Name = "Open Notebook"
				c.Sidebar.ShortcutKey = sidebar.DefaultShortcutKey
			}

			platform := sidebar.ParsePlatform(renderPlatform)
			if renderPlatform == "" {
				platform = detectPlatform()
			}

			view := sidebar.Build(sidebar.DefaultMenu(), sidebar.Input{
				CurrentPath: renderPath,
				State:       sidebar.StateFromCollapsed(renderCollapsed),
				Platform:    platform,
				Theme:       sidebar.ParseTheme(renderTheme),
				Brand:       sidebar.Brand{Name: c.Brand.Name, LogoURL: c.Brand.Logo},
				ShortcutKey: c.Sidebar.ShortcutKey,
			})

			_, err = fmt.Fprintln(cmd.OutOrStdout(), termview.Render(view))

			return err
		},
	}
)

// detectPlatform resolves the platform of the local machine once.
func detectPlatform() sidebar.Platform {
	detector := sidebar.NewDetector()
	detector.Start(func() string {
		if runtime.GOOS == "darwin" {
			return "macOS"
		}

		return runtime.GOOS
	})
	<-detector.Done()

	return detector.Platform()
}
