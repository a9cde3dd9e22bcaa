package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthware/hearth/internal/panel"
)

// renderStatusBar renders the bottom bar. The confirmation prompt
// preempts everything; then action feedback, then the fetch error
// banner, then context hints.
func renderStatusBar(m *Model, width int) string {
	if m.active < 0 {
		return renderHomeBar(m, width)
	}

	st := m.panes[m.active].Status()

	if st.ConfirmPrompt != "" {
		return renderConfirmBar(st.ConfirmPrompt, width)
	}

	if st.Feedback != nil {
		if st.Feedback.Kind == panel.FeedbackError {
			return renderErrorBar(st.Feedback.Message+"  (Esc dismisses)", width)
		}
		return statusBarStyle.Width(width).Render(" " +
			lipgloss.NewStyle().Foreground(colorGreen).Render(st.Feedback.Message))
	}

	if st.ErrorMessage != "" {
		return renderErrorBar(st.ErrorMessage, width)
	}

	left := " " + st.Hints
	if st.Editing {
		left = " " + keyHint("Ctrl+s", "save") + "  " + keyHint("Tab", "next field") + "  " + keyHint("Esc", "cancel")
	} else if st.Mode == panel.ModeSearch {
		left = " " + keyHint("Enter", "apply filter") + "  " + keyHint("Esc", "clear search")
	}

	right := ""
	if st.Busy {
		right = pendingBadgeStyle.Render("working…") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderHomeBar(m *Model, width int) string {
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	left := " " + keyHint("j/k", "navigate") + "  " + keyHint("Enter", "open") + "  " +
		keyHint("1-5", "panel") + "  " + keyHint("?", "help") + "  " + keyHint("q", "quit")

	right := ""
	if m.connected {
		right = badgeConnectedStyle.Render("daemon up") + " "
	} else {
		right = badgeDisconnectedStyle.Render("daemon down") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}
