package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Inspect the hearth daemon",
	Long:  `Inspect the hearth daemon process this client talks to.`,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	RunE:  runDaemonStatus,
}

func init() {
	daemonCmd.AddCommand(daemonStatusCmd)
}

func runDaemonStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if !running || info == nil {
		fmt.Println(styleError.Render("Daemon is not running."))
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)

	fmt.Println(styleSuccess.Render("Daemon is running."))
	fmt.Printf("  %s %s\n", styleLabel.Render("Host:   "), styleValue.Render(info.Host))
	fmt.Printf("  %s %d\n", styleLabel.Render("Port:   "), info.Port)
	fmt.Printf("  %s %d\n", styleLabel.Render("PID:    "), info.PID)
	fmt.Printf("  %s %s\n", styleLabel.Render("Uptime: "), uptime)

	// A live PID does not guarantee the API is serving; probe it.
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.FromInfo(info).Health(ctx); err != nil {
		fmt.Println(styleWarning.Render("  API is not responding."))
		return nil
	}
	fmt.Printf("  %s %s\n", styleLabel.Render("API:    "), styleSuccess.Render("ok"))
	return nil
}
