// Package tui implements the interactive TUI for hearth.
package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthware/hearth/internal/client"
	"github.com/hearthware/hearth/internal/config"
	"github.com/hearthware/hearth/internal/prefs"
)

// programRef is a shared reference to the tea.Program for goroutine
// sends. It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// defaultDaemonAddr is used when neither settings nor a daemon.yaml
// discovery file name an endpoint.
const defaultDaemonAddr = "http://127.0.0.1:7420"

// Run launches the TUI.
func Run() error {
	if err := config.EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to prepare config dir: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	info, err := config.LoadDaemonInfo()
	if err != nil {
		return fmt.Errorf("failed to read daemon discovery file: %w", err)
	}

	baseURL := defaultDaemonAddr
	switch {
	case settings.Daemon.Host != "" && settings.Daemon.Port != 0:
		baseURL = fmt.Sprintf("http://%s:%d", settings.Daemon.Host, settings.Daemon.Port)
	case info != nil:
		baseURL = fmt.Sprintf("http://%s:%d", info.Host, info.Port)
	}
	c := client.New(baseURL)

	// Panel preferences are optional: a broken prefs database degrades
	// to per-session defaults, never blocks the TUI.
	var store *prefs.Store
	if path, err := config.GlobalPrefsFile(); err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		store, _ = prefs.Open(ctx, path)
		cancel()
	}

	ref := &programRef{}
	model := NewModel(c, settings, store, info, ref)

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)

	// The daemon file override in settings pins the endpoint; only
	// discovery-based clients follow daemon restarts.
	var watcher *daemonWatcher
	if settings.Daemon.Host == "" {
		watcher, _ = startDaemonWatcher(ref)
	}

	_, runErr := p.Run()

	ref.Clear()
	if watcher != nil {
		watcher.Stop()
	}
	if store != nil {
		_ = store.Close()
	}
	return runErr
}
