package tui

import (
	"fmt"
	"time"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/models"
	"github.com/hearthware/hearth/internal/panel"
)

func newBrowserPane(c *client.Client, match panel.MatchFunc) panelPane {
	cfg := paneConfig[models.BrowserTab]{
		id:       "browser",
		title:    "Browser",
		sections: []string{"tabs", "sessions"},
		sectionOf: func(t models.BrowserTab) int {
			if t.Kind == "session" {
				return 1
			}
			return 0
		},
		// Browser state moves fast while an automation run is active.
		interval: time.Second,
		fetch:    c.ListBrowserTabs,
		empty:    "No browser activity.",
		row:      browserRow,
		actions: []actionDef[models.BrowserTab]{
			{
				key:  "o",
				name: "resume",
				hint: "resume",
				run:  c.ResumeBrowserSession,
			},
			{
				key:         "x",
				name:        "close",
				hint:        "close",
				destructive: true,
				confirm: func(t models.BrowserTab) string {
					return fmt.Sprintf("Close %q? (y/n)", t.Title)
				},
				run: c.CloseBrowserTab,
			},
		},
	}
	return newPane(cfg, match)
}

func browserRow(t models.BrowserTab, width int) string {
	var badge string
	switch t.Status {
	case "active":
		badge = activeBadgeStyle.Render("[●]")
	case "suspended":
		badge = pendingBadgeStyle.Render("[⏸]")
	default:
		badge = idleBadgeStyle.Render("[○]")
	}
	row := fmt.Sprintf("%s %s", badge, t.Title)
	if t.URL != "" {
		row += dimTextStyle.Render(" · " + t.URL)
	}
	return row
}
