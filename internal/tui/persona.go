package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/models"
	"github.com/hearthware/hearth/internal/panel"
)

func newPersonaPane(c *client.Client, match panel.MatchFunc) panelPane {
	cfg := paneConfig[models.Persona]{
		id:       "persona",
		title:    "Persona",
		sections: []string{"personas"},
		interval: 5 * time.Second,
		fetch:    c.ListPersonas,
		empty:    "No personas defined.",
		row:      personaRow,
		detail:   personaDetail,
		actions: []actionDef[models.Persona]{
			{
				key:  "e",
				name: "enable",
				hint: "enable",
				enabled: func(p models.Persona) bool {
					return !p.Active
				},
				run: c.EnablePersona,
			},
			{
				key:  "d",
				name: "disable",
				hint: "disable",
				enabled: func(p models.Persona) bool {
					return p.Active
				},
				run: c.DisablePersona,
			},
			{
				key:  "s",
				name: "retry-sync",
				hint: "retry sync",
				enabled: func(p models.Persona) bool {
					return p.SyncStatus == "failed"
				},
				run: c.RetryPersonaSync,
			},
		},
	}
	return newPane(cfg, match)
}

func personaRow(p models.Persona, width int) string {
	badge := idleBadgeStyle.Render("[ ]")
	if p.Active {
		badge = activeBadgeStyle.Render("[●]")
	}
	row := badge + " " + p.Name
	switch p.SyncStatus {
	case "failed":
		row += failedBadgeStyle.Render(" ⚠ sync failed")
	case "syncing":
		row += pendingBadgeStyle.Render(" syncing…")
	}
	return row
}

func personaDetail(p models.Persona, width int) string {
	state := "inactive"
	if p.Active {
		state = "active"
	}
	lines := []string{
		detailTitleStyle.Render(p.Name),
		"",
	}
	for _, raw := range strings.Split(p.Description, "\n") {
		lines = append(lines, ansi.Truncate(raw, width, "…"))
	}
	lines = append(lines,
		"",
		detailLabelStyle.Render("State")+state,
	)
	if p.SyncStatus != "" {
		lines = append(lines, detailLabelStyle.Render("Sync")+p.SyncStatus)
	}
	lines = append(lines, "", dimTextStyle.Render("e enable  d disable  s retry sync  Esc back"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
