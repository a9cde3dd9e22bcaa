package panel

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultActionTimeout  = 10 * time.Second
	defaultFeedbackExpiry = 2500 * time.Millisecond
)

// ActionFunc performs one mutating daemon call and returns the
// user-visible success message.
type ActionFunc func(ctx context.Context) (string, error)

// ActionDoneMsg delivers the outcome of one mutating call.
type ActionDoneMsg struct {
	Panel   string
	Gen     int
	Action  string
	Message string
	Err     error
}

// FeedbackExpiredMsg dismisses success feedback after its display delay.
type FeedbackExpiredMsg struct {
	Panel string
	Gen   int
}

// Executor dispatches at most one mutating daemon call at a time for
// one panel instance. The busy flag lives in State; the executor
// enforces it before any network call is issued, so a double dispatch
// never reaches the daemon.
type Executor[T Record] struct {
	panel   string
	timeout time.Duration
	expiry  time.Duration
}

// NewExecutor builds an executor for the panel.
func NewExecutor[T Record](panelID string) *Executor[T] {
	return &Executor[T]{
		panel:   panelID,
		timeout: defaultActionTimeout,
		expiry:  defaultFeedbackExpiry,
	}
}

// Do starts the action unless one is already in flight. When busy the
// request is silently dropped: state is returned unchanged and cmd is
// nil. Otherwise ActionStart is applied and the returned command runs
// the call, resolving to an ActionDoneMsg carrying the supplied
// generation token.
func (e *Executor[T]) Do(s State[T], gen int, action string, fn ActionFunc) (State[T], tea.Cmd) {
	if s.Busy {
		return s, nil
	}
	next := Apply(s, ActionStart{})
	panelID := e.panel
	timeout := e.timeout
	cmd := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		message, err := fn(ctx)
		return ActionDoneMsg{Panel: panelID, Gen: gen, Action: action, Message: message, Err: err}
	}
	return next, cmd
}

// ExpireCmd arms the success-feedback auto-dismiss timer. The message
// carries the generation token so a timer armed before a panel close
// cannot clear feedback on a reopened panel.
func (e *Executor[T]) ExpireCmd(gen int) tea.Cmd {
	panelID := e.panel
	return tea.Tick(e.expiry, func(time.Time) tea.Msg {
		return FeedbackExpiredMsg{Panel: panelID, Gen: gen}
	})
}
