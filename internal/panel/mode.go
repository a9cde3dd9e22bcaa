package panel

// Mode is the panel's input-routing mode. Every key the host receives
// is dispatched through an explicit per-mode table, so each key's
// effect (or deliberate no-op) is enumerable.
type Mode int

const (
	ModeList Mode = iota
	ModeSearch
	ModeConfirm
	ModeDetail
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	case ModeDetail:
		return "detail"
	default:
		return "list"
	}
}

// ModeOf derives the current input mode from state. A pending
// confirmation captures input ahead of everything else, then search,
// then detail.
func ModeOf[T Record](s State[T]) Mode {
	switch {
	case s.Confirming != "":
		return ModeConfirm
	case s.Searching:
		return ModeSearch
	case s.Focused == Detail:
		return ModeDetail
	default:
		return ModeList
	}
}
