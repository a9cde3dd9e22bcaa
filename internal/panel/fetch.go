package panel

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Unreachable is the single message surfaced for any transport-level
// fetch failure. Action failures, by contrast, surface the daemon's
// error string verbatim.
const Unreachable = "Unable to reach daemon"

const defaultFetchTimeout = 5 * time.Second

// FetchFunc fetches the panel's item list from the daemon.
type FetchFunc[T Record] func(ctx context.Context) ([]T, error)

// FetchedMsg delivers the outcome of one fetch. Items is a []T carried
// as any so the message type stays shared across panels; the owning
// pane re-types it.
type FetchedMsg struct {
	Panel string
	Gen   int
	Items any
	Err   error
}

// PollTickMsg fires the next poll cycle.
type PollTickMsg struct {
	Panel string
	Gen   int
}

// Fetcher owns the poll loop for one panel instance. The generation
// token is bumped on every open and close, so fetch results or ticks
// that arrive for a previous generation are discarded instead of
// mutating a reset panel.
type Fetcher[T Record] struct {
	panel    string
	fn       FetchFunc[T]
	interval time.Duration
	timeout  time.Duration
	gen      int
	open     bool
}

// NewFetcher builds a fetcher polling at the given interval.
func NewFetcher[T Record](panelID string, fn FetchFunc[T], interval time.Duration) *Fetcher[T] {
	return &Fetcher[T]{
		panel:    panelID,
		fn:       fn,
		interval: interval,
		timeout:  defaultFetchTimeout,
	}
}

// Open arms the poll loop: an immediate fetch plus the repeating tick.
// The caller dispatches FetchStart alongside.
func (f *Fetcher[T]) Open() tea.Cmd {
	f.gen++
	f.open = true
	return tea.Batch(f.fetchCmd(), f.tickCmd())
}

// Close disarms the loop. In-flight results for the old generation are
// dropped when they land.
func (f *Fetcher[T]) Close() {
	f.gen++
	f.open = false
}

// Live reports whether a message generation belongs to the currently
// open loop.
func (f *Fetcher[T]) Live(gen int) bool {
	return f.open && gen == f.gen
}

// Gen returns the current generation token, shared with the action
// executor so its results honor the same liveness check.
func (f *Fetcher[T]) Gen() int { return f.gen }

// Refresh forces an immediate out-of-band fetch without resetting the
// timer, used when a sibling action should be reflected sooner than
// the next tick.
func (f *Fetcher[T]) Refresh() tea.Cmd {
	if !f.open {
		return nil
	}
	return f.fetchCmd()
}

// OnTick handles a poll tick: re-fetch and re-arm. Stale ticks return
// nil. Failures do not stop the loop; the panel retries at the fixed
// interval indefinitely.
func (f *Fetcher[T]) OnTick(msg PollTickMsg) tea.Cmd {
	if msg.Panel != f.panel || !f.Live(msg.Gen) {
		return nil
	}
	return tea.Batch(f.fetchCmd(), f.tickCmd())
}

func (f *Fetcher[T]) fetchCmd() tea.Cmd {
	gen := f.gen
	fn := f.fn
	panelID := f.panel
	timeout := f.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, err := fn(ctx)
		if err != nil {
			return FetchedMsg{Panel: panelID, Gen: gen, Err: err}
		}
		return FetchedMsg{Panel: panelID, Gen: gen, Items: items}
	}
}

func (f *Fetcher[T]) tickCmd() tea.Cmd {
	gen := f.gen
	panelID := f.panel
	return tea.Tick(f.interval, func(time.Time) tea.Msg {
		return PollTickMsg{Panel: panelID, Gen: gen}
	})
}
