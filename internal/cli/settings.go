package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hearthware/hearth/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change client settings",
	Long: `Show or change client settings stored in ~/.hearth/settings.yaml.

Available keys:
  search.fuzzy      Use fuzzy matching in panel search (true/false)
  daemon.host       Daemon host override
  daemon.port       Daemon port override
  appearance.theme  Color theme name`,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	fmt.Println(styleBrand.Render("Hearth settings"))
	fmt.Printf("  %s %t\n", styleLabel.Render("search.fuzzy:     "), settings.Search.Fuzzy)
	fmt.Printf("  %s %s\n", styleLabel.Render("daemon.host:      "), styleValue.Render(settings.Daemon.Host))
	fmt.Printf("  %s %d\n", styleLabel.Render("daemon.port:      "), settings.Daemon.Port)
	fmt.Printf("  %s %s\n", styleLabel.Render("appearance.theme: "), styleValue.Render(settings.Appearance.Theme))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	switch key {
	case "search.fuzzy":
		fuzzy, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %s", key, value)
		}
		settings.Search.Fuzzy = fuzzy
	case "daemon.host":
		settings.Daemon.Host = value
	case "daemon.port":
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("invalid port: %s", value)
		}
		settings.Daemon.Port = port
	case "appearance.theme":
		settings.Appearance.Theme = value
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Set %s = %s", key, value)))
	return nil
}
