// Package theme holds the dark mode and color scheme commands
//
// e.g., dotoo theme ...
package theme

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/config/colors"
)

// ThemeCmd returns the theme parent command. Without a subcommand it shows
// the current settings.
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the display theme",
		Long: `Show the dark mode setting and the configured color scheme.

The color scheme is chosen with theme.preset in the config file or a
DOTOO_THEME_FILE; dark mode is stored with the tasks.

Examples:
  dotoo theme
  dotoo theme toggle
  dotoo theme presets
`,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(PresetsCmd())

	return cmd
}

// themeView is the JSON shape of the current theme
type themeView struct {
	DarkMode bool   `json:"darkMode"`
	Preset   string `json:"preset"`
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		view := themeView{
			DarkMode: c.App.TaskService.IsDarkMode(),
			Preset:   c.App.Config.ColorScheme.Preset,
		}
		if formatter.JSON {
			return formatter.Success(view)
		}
		fmt.Printf("Dark mode: %s\n", onOff(view.DarkMode))
		fmt.Printf("Preset:    %s\n", view.Preset)
		return nil
	})
}

// ToggleCmd returns the theme toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Switch dark mode on or off",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				if err := c.App.TaskService.ToggleDarkMode(cmd.Context()); err != nil {
					return formatter.Fail(err)
				}
				dark := c.App.TaskService.IsDarkMode()

				if formatter.JSON {
					return formatter.Success(themeView{DarkMode: dark, Preset: c.App.Config.ColorScheme.Preset})
				}
				if !formatter.Quiet {
					fmt.Printf("✓ Dark mode %s\n", onOff(dark))
				}
				return nil
			})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// PresetsCmd returns the theme presets subcommand
func PresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in color schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.Formatter(cmd)
			if formatter.JSON {
				return formatter.Success(colors.Presets)
			}
			for _, name := range colors.Presets {
				if formatter.Quiet {
					fmt.Println(name)
					continue
				}
				fmt.Printf("%-12s %s\n", name, swatch(colors.GetPreset(name)))
			}
			return nil
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// swatch renders the status and priority colors of a scheme as blocks
func swatch(s *colors.ColorScheme) string {
	var b strings.Builder
	for _, hex := range []string{s.Accent, s.Todo, s.Doing, s.Done, s.PriorityLow, s.PriorityMedium, s.PriorityHigh, s.PriorityCritical} {
		b.WriteString(styles.ColoredText("██", hex))
	}
	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
