package panel

import "testing"

func TestGateKeyTable(t *testing.T) {
	accepts := []string{"enter", "y", "Y"}
	for _, k := range accepts {
		if GateKey(k) != GateAccept {
			t.Fatalf("expected %q to accept", k)
		}
	}

	dismisses := []string{"esc", "n", "N", "q"}
	for _, k := range dismisses {
		if GateKey(k) != GateDismiss {
			t.Fatalf("expected %q to dismiss", k)
		}
	}

	// Stray input must be swallowed, never forwarded to navigation.
	ignored := []string{"j", "k", "x", "tab", "/", " ", "up", "down", "a"}
	for _, k := range ignored {
		if GateKey(k) != GateIgnore {
			t.Fatalf("expected %q to be ignored", k)
		}
	}
}
