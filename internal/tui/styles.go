package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// List styles.
var (
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	dimTextStyle = lipgloss.NewStyle().Foreground(colorDim)

	okBadgeStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	pendingBadgeStyle = lipgloss.NewStyle().Foreground(colorYellow)
	failedBadgeStyle  = lipgloss.NewStyle().Foreground(colorRed)
	idleBadgeStyle    = lipgloss.NewStyle().Foreground(colorDim)
	activeBadgeStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

// Daemon badge styles for the header.
var (
	badgeConnectedStyle    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	badgeDisconnectedStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// Detail view styles.
var (
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	detailLabelStyle = lipgloss.NewStyle().
				Width(12).
				Foreground(colorDim)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)
)

// Key hint styles for the status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Search bar styles.
var (
	searchPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	filterNoteStyle   = lipgloss.NewStyle().Foreground(colorOrange)
)
