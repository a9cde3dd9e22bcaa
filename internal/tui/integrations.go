package tui

import (
	"fmt"
	"time"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/models"
	"github.com/hearthware/hearth/internal/panel"
)

func newIntegrationsPane(c *client.Client, match panel.MatchFunc) panelPane {
	cfg := paneConfig[models.Integration]{
		id:       "integrations",
		title:    "Integrations",
		sections: []string{"connected", "available"},
		sectionOf: func(r models.Integration) int {
			// Errored connections stay in the connected section so the
			// failure is visible where the user expects the service.
			if r.Status == "available" {
				return 1
			}
			return 0
		},
		interval: 5 * time.Second,
		fetch:    c.ListIntegrations,
		empty:    "No integrations.",
		row:      integrationRow,
		actions: []actionDef[models.Integration]{
			{
				key:  "c",
				name: "connect",
				hint: "connect",
				enabled: func(r models.Integration) bool {
					return r.Status != "connected"
				},
				run: c.ConnectIntegration,
			},
			{
				key:  "d",
				name: "disconnect",
				hint: "disconnect",
				enabled: func(r models.Integration) bool {
					return r.Status == "connected"
				},
				run: c.DisconnectIntegration,
			},
			{
				key:         "x",
				name:        "remove",
				hint:        "remove",
				destructive: true,
				confirm: func(r models.Integration) string {
					return fmt.Sprintf("Remove integration %q? (y/n)", r.Name)
				},
				run: c.RemoveIntegration,
			},
		},
	}
	return newPane(cfg, match)
}

func integrationRow(r models.Integration, width int) string {
	var badge string
	switch r.Status {
	case "connected":
		badge = okBadgeStyle.Render("[✓]")
	case "error":
		badge = failedBadgeStyle.Render("[✗]")
	default:
		badge = idleBadgeStyle.Render("[ ]")
	}
	row := fmt.Sprintf("%s %s", badge, r.Name)
	if r.Provider != "" {
		row += dimTextStyle.Render(" · " + r.Provider)
	}
	return row
}
