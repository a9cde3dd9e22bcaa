package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+q", "Quit"},
			{"Ctrl+h", "Toggle help"},
			{"1-5", "Open panel directly"},
		},
	},
	{
		title: "Panels",
		keys: []helpKey{
			{"j/k ↑/↓", "Move selection"},
			{"Tab / Shift+Tab", "Cycle sections"},
			{"/", "Search"},
			{"Enter", "Open detail / confirm"},
			{"Esc / q", "Close / dismiss / cancel"},
		},
	},
	{
		title: "Integrations",
		keys: []helpKey{
			{"c", "Connect"},
			{"d", "Disconnect"},
			{"x", "Remove (confirms)"},
		},
	},
	{
		title: "Memory",
		keys: []helpKey{
			{"r", "Reindex"},
			{"e", "Edit title/content"},
			{"x", "Delete (confirms)"},
		},
	},
	{
		title: "Documents",
		keys: []helpKey{
			{"r", "Reindex"},
			{"m", "Cycle extraction mode"},
			{"x", "Remove (confirms)"},
		},
	},
	{
		title: "Browser",
		keys: []helpKey{
			{"o", "Resume session"},
			{"x", "Close tab (confirms)"},
		},
	},
	{
		title: "Persona",
		keys: []helpKey{
			{"e", "Enable"},
			{"d", "Disable"},
			{"s", "Retry sync"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 56
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(18).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := dimTextStyle.Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", dimTextStyle.Render("Press Esc or Ctrl+h to close"))

	return overlayStyle.Width(maxWidth).Render(strings.Join(sections, "\n"))
}
