// Package cli implements the hearth CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hearthware/hearth/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "hearth",
	Short: "Terminal client for the hearth daemon",
	Long: `Hearth is a terminal client for the hearth daemon.
It mirrors the daemon's resources in live panels and lets you act on
integrations, memory, documents, browser sessions, and personas.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
