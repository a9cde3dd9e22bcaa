package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/models"
	"github.com/hearthware/hearth/internal/panel"
)

func newMemoryPane(c *client.Client, match panel.MatchFunc) panelPane {
	cfg := paneConfig[models.Memory]{
		id:       "memory",
		title:    "Memory",
		sections: []string{"memories"},
		interval: 3 * time.Second,
		fetch:    c.ListMemories,
		empty:    "No memories yet.",
		row:      memoryRow,
		detail:   memoryDetail,
		editFor: func(m models.Memory, width int) *editForm {
			return newEditForm(m.ID, m.Title, m.Content, width)
		},
		saveEdit: func(ctx context.Context, f *editForm) (string, error) {
			return c.SaveMemory(ctx, f.recordID, f.Title(), f.Content())
		},
		actions: []actionDef[models.Memory]{
			{
				key:  "r",
				name: "reindex",
				hint: "reindex",
				run:  c.ReindexMemory,
			},
			{
				key:         "x",
				name:        "delete",
				hint:        "delete",
				destructive: true,
				confirm: func(m models.Memory) string {
					return fmt.Sprintf("Delete memory %q? (y/n)", m.Title)
				},
				run: c.DeleteMemory,
			},
		},
	}
	return newPane(cfg, match)
}

func memoryRow(m models.Memory, width int) string {
	row := m.Title
	if len(m.Tags) > 0 {
		row += dimTextStyle.Render(" · " + strings.Join(m.Tags, ","))
	}
	return row
}

func memoryDetail(m models.Memory, width int) string {
	lines := []string{
		detailTitleStyle.Render(m.Title),
		"",
	}
	for _, raw := range strings.Split(m.Content, "\n") {
		lines = append(lines, ansi.Truncate(raw, width, "…"))
	}
	lines = append(lines, "")
	if len(m.Tags) > 0 {
		lines = append(lines, detailLabelStyle.Render("Tags")+strings.Join(m.Tags, ", "))
	}
	if m.IndexedAt != "" {
		lines = append(lines, detailLabelStyle.Render("Indexed")+m.IndexedAt)
	}
	lines = append(lines, detailLabelStyle.Render("Score")+fmt.Sprintf("%.2f", m.Score))
	lines = append(lines, "", dimTextStyle.Render("e edit  r reindex  x delete  Esc back"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
