package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/config"
	"github.com/hearthware/hearth/internal/models"
)

// DaemonFileChangedMsg signals that ~/.hearth/daemon.yaml was written
// or removed, typically because the daemon restarted on another port.
type DaemonFileChangedMsg struct{}

// DaemonProbedMsg carries the result of a home-screen liveness probe.
type DaemonProbedMsg struct {
	Running bool
	Info    *models.DaemonInfo
}

// homeTickMsg drives the periodic daemon probe while no panel is open.
type homeTickMsg struct{}

// ErrorMsg carries a model-level error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

// probeDaemonCmd checks whether the daemon is reachable: discovery file,
// live PID, and a health round trip.
func probeDaemonCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		running, info, err := config.IsDaemonRunning()
		if err != nil || !running {
			return DaemonProbedMsg{Running: false, Info: info}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.Health(ctx); err != nil {
			return DaemonProbedMsg{Running: false, Info: info}
		}
		return DaemonProbedMsg{Running: true, Info: info}
	}
}

func homeTick() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return homeTickMsg{}
	})
}
