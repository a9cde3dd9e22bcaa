package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/config"
	"github.com/hearthware/hearth/internal/models"
	"github.com/hearthware/hearth/internal/panel"
	"github.com/hearthware/hearth/internal/prefs"
)

// Model is the root Bubbletea model: a panel chooser plus at most one
// open panel pane at a time.
type Model struct {
	client   *client.Client
	settings *models.Settings

	daemon    *models.DaemonInfo
	connected bool

	panes  []panelPane
	active int // index into panes, -1 = home
	cursor int // home list cursor

	showHelp bool
	err      error

	width  int
	height int

	program *programRef
}

// paneDescriptions annotate the home chooser, index-aligned with the
// pane list.
var paneDescriptions = []string{
	"Third-party service connections",
	"Long-term memory entries",
	"Ingested document index",
	"Automated browser tabs and sessions",
	"Persona profiles and sync state",
}

// NewModel creates the initial TUI model.
func NewModel(c *client.Client, settings *models.Settings, store *prefs.Store, info *models.DaemonInfo, program *programRef) Model {
	match := panel.MatchFunc(panel.SubstringMatch)
	if settings.Search.Fuzzy {
		match = panel.FuzzyMatch
	}

	panes := []panelPane{
		newIntegrationsPane(c, match),
		newMemoryPane(c, match),
		newDocumentsPane(c, store, match),
		newBrowserPane(c, match),
		newPersonaPane(c, match),
	}

	return Model{
		client:    c,
		settings:  settings,
		daemon:    info,
		connected: info != nil,
		panes:     panes,
		active:    -1,
		program:   program,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(probeDaemonCmd(m.client), homeTick())
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case homeTickMsg:
		// The home screen has no fetcher of its own; probe liveness at
		// a low rate so the badge stays honest.
		if m.active < 0 {
			return m, tea.Batch(probeDaemonCmd(m.client), homeTick())
		}
		return m, homeTick()

	case DaemonProbedMsg:
		m.connected = msg.Running
		if msg.Info != nil {
			m.daemon = msg.Info
		}
		return m, nil

	case DaemonFileChangedMsg:
		return m.reloadDaemon()

	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil
	}

	// Everything else belongs to the open pane: fetch results, poll
	// ticks, action outcomes, feedback expiry, spinner frames.
	if m.active >= 0 {
		cmd, _ := m.panes[m.active].HandleMsg(msg)
		if m.panes[m.active].Status().Fetch == panel.FetchSucceeded {
			m.connected = true
		}
		if m.panes[m.active].Status().ErrorMessage == panel.Unreachable {
			m.connected = false
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, globalKeys.Quit) {
		return m, m.doQuit()
	}

	if m.showHelp {
		if key.Matches(msg, globalKeys.Help) || msg.String() == "esc" || msg.String() == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	if key.Matches(msg, globalKeys.Help) {
		m.showHelp = true
		return m, nil
	}

	if m.active >= 0 {
		cmd, closed := m.panes[m.active].HandleKey(msg)
		if closed {
			m.panes[m.active].Close()
			m.active = -1
			return m, tea.Batch(cmd, probeDaemonCmd(m.client))
		}
		return m, cmd
	}

	return m.handleHomeKey(msg)
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, homeKeys.Quit):
		return m, m.doQuit()

	case key.Matches(msg, homeKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.panes) - 1
		}
		return m, nil

	case key.Matches(msg, homeKeys.Down):
		m.cursor = (m.cursor + 1) % len(m.panes)
		return m, nil

	case key.Matches(msg, homeKeys.Open):
		return m.openPane(m.cursor)

	case key.Matches(msg, homeKeys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, homeKeys.Panel):
		idx := int(msg.String()[0] - '1')
		return m.openPane(idx)
	}
	return m, nil
}

func (m Model) openPane(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.panes) {
		return m, nil
	}
	m.active = idx
	m.cursor = idx
	return m, m.panes[idx].Open()
}

// reloadDaemon re-reads the discovery file after a change event and
// repoints the client at the new endpoint.
func (m Model) reloadDaemon() (tea.Model, tea.Cmd) {
	info, err := config.LoadDaemonInfo()
	if err != nil {
		m.err = fmt.Errorf("failed to re-read daemon discovery file: %w", err)
		return m, clearErrorAfter(5 * time.Second)
	}

	m.daemon = info
	if info == nil {
		m.connected = false
		return m, nil
	}

	m.client.Retarget(fmt.Sprintf("http://%s:%d", info.Host, info.Port))
	if m.active >= 0 {
		// The open pane's next poll tick would pick the new endpoint up
		// anyway; refresh now so the switch is visible immediately.
		return m, m.panes[m.active].Refresh()
	}
	return m, probeDaemonCmd(m.client)
}

func (m Model) doQuit() tea.Cmd {
	if m.active >= 0 {
		m.panes[m.active].Close()
	}
	m.program.Clear()
	return tea.Quit
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < 60 || m.height < 16 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				dimTextStyle.Render("Need 60x16, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr)),
			))
	}

	header := renderHeader(&m, m.width)
	statusBar := renderStatusBar(&m, m.width)

	bodyHeight := m.height - 2
	var body string
	if m.active >= 0 {
		body = m.panes[m.active].View(m.width, bodyHeight)
	} else {
		body = m.renderHome(m.width)
	}
	body = lipgloss.NewStyle().Width(m.width).Height(bodyHeight).Render(body)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)

	if m.showHelp {
		view = renderOverlay(view, renderHelp(m.width), m.width, m.height)
	}
	return view
}

func (m Model) renderHome(width int) string {
	lines := []string{
		"",
		sectionHeaderStyle.Render("  Panels"),
		"",
	}
	for i, p := range m.panes {
		row := fmt.Sprintf("%d  %-14s %s", i+1, p.Title(), dimTextStyle.Render(paneDescriptions[i]))
		if i == m.cursor {
			row = selectedItemStyle.Width(width - 4).Render(row)
		}
		lines = append(lines, "  "+row)
	}

	lines = append(lines, "")
	if m.daemon != nil {
		uptime := time.Since(m.daemon.StartedAt).Truncate(time.Second)
		lines = append(lines, dimTextStyle.Render(fmt.Sprintf(
			"  daemon %s:%d · pid %d · up %s", m.daemon.Host, m.daemon.Port, m.daemon.PID, uptime)))
	} else {
		lines = append(lines, dimTextStyle.Render("  no daemon discovery file found"))
	}
	return strings.Join(lines, "\n")
}
