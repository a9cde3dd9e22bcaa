package panel

// GateOutcome is the result of pressing a key while a destructive
// action awaits confirmation.
type GateOutcome int

const (
	// GateIgnore swallows the key: stray input while confirming must
	// never leak into navigation or trigger the action.
	GateIgnore GateOutcome = iota
	// GateAccept executes the pending destructive action.
	GateAccept
	// GateDismiss cancels the pending confirmation with no side effect.
	GateDismiss
)

// GateKey is the confirmation gate's complete key table.
func GateKey(key string) GateOutcome {
	switch key {
	case "enter", "y", "Y":
		return GateAccept
	case "esc", "n", "N", "q":
		return GateDismiss
	default:
		return GateIgnore
	}
}
