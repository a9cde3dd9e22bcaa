package cli

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthware/hearth/internal/buildinfo"
	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/config"
	"github.com/hearthware/hearth/internal/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", styleBrand.Render("Hearth"), styleVersion.Render(buildinfo.Version))
		fmt.Printf("  %s %s/%s\n", styleLabel.Render("OS/Arch:"), runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  %s %s\n", styleLabel.Render("Go:"), runtime.Version())
		if buildinfo.CommitHash != "unknown" {
			fmt.Printf("  %s %s\n", styleLabel.Render("Commit:"), buildinfo.CommitHash)
		}

		printDaemonVersion()
	},
}

// printDaemonVersion reports the daemon's version when one is reachable,
// flagging a major-version mismatch with the client.
func printDaemonVersion() {
	running, info, err := config.IsDaemonRunning()
	if err != nil || !running || info == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	daemonVersion, err := client.FromInfo(info).DaemonVersion(ctx)
	if err != nil {
		return
	}

	fmt.Printf("  %s %s\n", styleLabel.Render("Daemon:"), styleValue.Render(daemonVersion))
	if !version.Compatible(buildinfo.Version, daemonVersion) {
		fmt.Println(styleWarning.Render("  Client and daemon major versions differ."))
	}
}
