package panel

import "testing"

func TestMoveWraparound(t *testing.T) {
	cases := []struct {
		name    string
		idx     int
		visible int
		delta   int
		want    int
	}{
		{"down from last wraps", 2, 3, 1, 0},
		{"up from first wraps", 0, 3, -1, 2},
		{"down within bounds", 0, 3, 1, 1},
		{"up within bounds", 2, 3, -1, 1},
		{"single item stays", 0, 1, 1, 0},
		{"empty list pins zero", 5, 0, 1, 0},
		{"stale index clamped before move", 9, 3, 1, 0},
	}
	for _, tc := range cases {
		if got := Move(tc.idx, tc.visible, tc.delta); got != tc.want {
			t.Fatalf("%s: Move(%d, %d, %d) = %d, want %d",
				tc.name, tc.idx, tc.visible, tc.delta, got, tc.want)
		}
	}
}

func TestClampIndex(t *testing.T) {
	cases := []struct {
		idx, visible, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 2},
		{99, 3, 2},
		{-1, 3, 0},
		{0, 0, 0},
		{7, 0, 0},
	}
	for _, tc := range cases {
		if got := ClampIndex(tc.idx, tc.visible); got != tc.want {
			t.Fatalf("ClampIndex(%d, %d) = %d, want %d", tc.idx, tc.visible, got, tc.want)
		}
	}
}

func TestCycleFocus(t *testing.T) {
	// Two sections, no detail open.
	if got := CycleFocus(0, 2, false, false); got != 1 {
		t.Fatalf("expected 0→1, got %d", got)
	}
	if got := CycleFocus(1, 2, false, false); got != 0 {
		t.Fatalf("expected 1→0, got %d", got)
	}
	if got := CycleFocus(0, 2, false, true); got != 1 {
		t.Fatalf("expected reverse 0→1, got %d", got)
	}

	// Detail open joins the cycle after the last section.
	if got := CycleFocus(1, 2, true, false); got != Detail {
		t.Fatalf("expected last→detail, got %d", got)
	}
	if got := CycleFocus(Detail, 2, true, false); got != 0 {
		t.Fatalf("expected detail→0, got %d", got)
	}
	if got := CycleFocus(0, 2, true, true); got != Detail {
		t.Fatalf("expected reverse 0→detail, got %d", got)
	}
	if got := CycleFocus(Detail, 2, true, true); got != 1 {
		t.Fatalf("expected reverse detail→last, got %d", got)
	}
}

func TestCurrentClampsOnEveryAccess(t *testing.T) {
	visible := records("a", "b", "c")

	item, ok := Current(visible, 1)
	if !ok || item.id != "b" {
		t.Fatalf("expected b, got %#v/%v", item, ok)
	}

	// Index outran a shrunken filtered list: clamp, don't fail.
	item, ok = Current(visible[:1], 2)
	if !ok || item.id != "a" {
		t.Fatalf("expected clamp to last visible item, got %#v/%v", item, ok)
	}

	if _, ok := Current([]testRecord{}, 0); ok {
		t.Fatal("expected no current item for empty list")
	}
}

func TestModeOfPriority(t *testing.T) {
	s := newTestState("a")
	if ModeOf(s) != ModeList {
		t.Fatalf("expected list mode, got %v", ModeOf(s))
	}

	s = Apply(s, OpenDetail{ID: "a"})
	if ModeOf(s) != ModeDetail {
		t.Fatalf("expected detail mode, got %v", ModeOf(s))
	}

	s = Apply(s, EnterSearch{})
	if ModeOf(s) != ModeSearch {
		t.Fatalf("expected search to outrank detail, got %v", ModeOf(s))
	}

	s = Apply(s, ConfirmStart{ID: "a"})
	if ModeOf(s) != ModeConfirm {
		t.Fatalf("expected confirm to outrank everything, got %v", ModeOf(s))
	}
}
