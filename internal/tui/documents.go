package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/models"
	"github.com/hearthware/hearth/internal/panel"
	"github.com/hearthware/hearth/internal/prefs"
)

// Extraction modes the daemon supports for document ingestion. The
// choice is a persisted preference, not panel state: it survives
// close/reopen while everything else resets.
var extractionModes = []string{"text", "layout", "ocr"}

const (
	prefsPanelDocuments = "documents"
	prefsKeyExtraction  = "extraction_mode"
)

func newDocumentsPane(c *client.Client, store *prefs.Store, match panel.MatchFunc) panelPane {
	mode := extractionModes[0]

	cfg := paneConfig[models.Document]{
		id:       "documents",
		title:    "Documents",
		sections: []string{"indexed", "pending"},
		sectionOf: func(d models.Document) int {
			if d.Status == "pending" {
				return 1
			}
			return 0
		},
		interval: 3 * time.Second,
		fetch:    c.ListDocuments,
		empty:    "No documents ingested.",
		row:      documentRow,
		actions: []actionDef[models.Document]{
			{
				key:  "r",
				name: "reindex",
				hint: "reindex",
				run:  c.ReindexDocument,
			},
			{
				key:         "x",
				name:        "remove",
				hint:        "remove",
				destructive: true,
				confirm: func(d models.Document) string {
					return fmt.Sprintf("Remove document %q from the index? (y/n)", d.Name)
				},
				run: c.RemoveDocument,
			},
		},
		onOpen: func(p *pane[models.Document]) {
			if store != nil {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				mode = store.GetDefault(ctx, prefsPanelDocuments, prefsKeyExtraction, extractionModes[0])
				cancel()
			}
			p.note = extractionNote(mode)
		},
		extraKey: func(p *pane[models.Document], k string) tea.Cmd {
			if k != "m" {
				return nil
			}
			mode = nextExtractionMode(mode)
			p.note = extractionNote(mode)
			if store != nil {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				_ = store.Set(ctx, prefsPanelDocuments, prefsKeyExtraction, mode)
				cancel()
			}
			return nil
		},
	}
	return newPane(cfg, match)
}

func nextExtractionMode(cur string) string {
	for i, m := range extractionModes {
		if m == cur {
			return extractionModes[(i+1)%len(extractionModes)]
		}
	}
	return extractionModes[0]
}

func extractionNote(mode string) string {
	return fmt.Sprintf("extraction mode: %s (m cycles)", mode)
}

func documentRow(d models.Document, width int) string {
	var badge string
	switch d.Status {
	case "indexed":
		badge = okBadgeStyle.Render("[✓]")
	case "failed":
		badge = failedBadgeStyle.Render("[✗]")
	default:
		badge = pendingBadgeStyle.Render("[…]")
	}
	row := fmt.Sprintf("%s %s", badge, d.Name)
	if d.Path != "" {
		row += dimTextStyle.Render(" · " + d.Path)
	}
	return row
}
