package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(m *Model, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorOrange).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Hearth")

	tabs := make([]string, 0, len(m.panes))
	for i, p := range m.panes {
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(p.Title()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(p.Title()))
		}
	}

	left := " " + dot + " " + name + "  " + strings.Join(tabs, tabSepStyle.Render(" | "))
	right := renderDaemonBadge(m) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderDaemonBadge(m *Model) string {
	if m.connected {
		return badgeConnectedStyle.Render("● connected")
	}
	return badgeDisconnectedStyle.Render("⚠ disconnected")
}
