package tui

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hearthware/hearth/internal/config"
)

// daemonWatcher watches ~/.hearth for daemon.yaml rewrites so a daemon
// restart (typically on a new port) retargets the client without
// restarting the TUI.
type daemonWatcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

func startDaemonWatcher(program *programRef) (*daemonWatcher, error) {
	dir, err := config.GlobalDir()
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &daemonWatcher{fsw: fsw, done: make(chan struct{})}
	go w.loop(program)
	return w, nil
}

func (w *daemonWatcher) loop(program *programRef) {
	// Writes come in bursts (create + write + chmod); debounce them
	// into a single message.
	var debounce *time.Timer
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != config.DaemonFileName {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, func() {
				program.Send(DaemonFileChangedMsg{})
			})

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

		case <-w.done:
			return
		}
	}
}

// Stop shuts the watcher down. Safe to call once.
func (w *daemonWatcher) Stop() {
	close(w.done)
	_ = w.fsw.Close()
}
