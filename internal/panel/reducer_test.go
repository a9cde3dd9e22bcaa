package panel

import (
	"reflect"
	"testing"
)

type testRecord struct {
	id   string
	name string
}

func (r testRecord) RecordID() string       { return r.id }
func (r testRecord) SearchFields() []string { return []string{r.id, r.name} }

func records(ids ...string) []testRecord {
	items := make([]testRecord, len(ids))
	for i, id := range ids {
		items[i] = testRecord{id: id, name: id}
	}
	return items
}

func newTestState(ids ...string) State[testRecord] {
	s := New[testRecord]("main")
	return Apply(s, FetchSuccess(records(ids...)))
}

func TestFetchStartClearsError(t *testing.T) {
	s := newTestState("a")
	s.ErrorMessage = "stale"
	s = Apply(s, FetchStart{})
	if s.Fetch != FetchLoading {
		t.Fatalf("expected loading state, got %v", s.Fetch)
	}
	if s.ErrorMessage != "" {
		t.Fatalf("expected error cleared, got %q", s.ErrorMessage)
	}
}

func TestFetchSuccessClampsSelections(t *testing.T) {
	s := New[testRecord]("one", "two")
	s = Apply(s, FetchSuccess(records("a", "b", "c", "d", "e")))
	s.Sections[0].Selected = 4
	s.Sections[1].Selected = 3

	s = Apply(s, FetchSuccess(records("a", "b")))
	if s.Sections[0].Selected != 1 || s.Sections[1].Selected != 1 {
		t.Fatalf("expected selections clamped to 1, got %d/%d",
			s.Sections[0].Selected, s.Sections[1].Selected)
	}

	s = Apply(s, FetchSuccess(records()))
	if s.Sections[0].Selected != 0 || s.Sections[1].Selected != 0 {
		t.Fatalf("expected selections pinned to 0 for empty list")
	}
}

func TestFetchSuccessClearsVanishedConfirmation(t *testing.T) {
	s := newTestState("a", "b")
	s = Apply(s, ConfirmStart{ID: "b"})
	if s.Confirming != "b" {
		t.Fatalf("expected confirming b, got %q", s.Confirming)
	}

	s = Apply(s, FetchSuccess(records("a")))
	if s.Confirming != "" {
		t.Fatalf("expected confirmation cleared with its record, got %q", s.Confirming)
	}
}

// Scenario: a fetch that fails after a prior success leaves items
// visible ("stale but shown") alongside the error banner.
func TestFetchErrorKeepsItems(t *testing.T) {
	s := New[testRecord]("main")
	s = Apply(s, FetchStart{})
	s = Apply(s, FetchSuccess(records("A", "B")))
	s = Apply(s, FetchError{Message: Unreachable})

	if s.Fetch != FetchFailed {
		t.Fatalf("expected failed fetch state, got %v", s.Fetch)
	}
	if s.ErrorMessage != Unreachable {
		t.Fatalf("expected unreachable message, got %q", s.ErrorMessage)
	}
	if len(s.Items) != 2 || s.Items[0].id != "A" || s.Items[1].id != "B" {
		t.Fatalf("expected items untouched by fetch error, got %#v", s.Items)
	}
}

// Scenario: selectedIndex=2 on a three-item list, SELECT_DOWN wraps to 0.
func TestSelectionWraparound(t *testing.T) {
	s := newTestState("a", "b", "c")
	s.Sections[0].Selected = 2

	s = Apply(s, SelectDown{Visible: 3})
	if s.Sections[0].Selected != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.Sections[0].Selected)
	}

	s = Apply(s, SelectUp{Visible: 3})
	if s.Sections[0].Selected != 2 {
		t.Fatalf("expected wrap to 2, got %d", s.Sections[0].Selected)
	}
}

func TestSelectionOnEmptyVisibleListIsNoOp(t *testing.T) {
	s := newTestState("a", "b")
	before := s
	s = Apply(s, SelectDown{Visible: 0})
	if !reflect.DeepEqual(before, s) {
		t.Fatalf("expected no-op on empty visible list")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := newTestState("a", "b", "c")
	s.Sections[0].Selected = 1

	next := Apply(s, SelectDown{Visible: 3})
	if s.Sections[0].Selected != 1 {
		t.Fatalf("input state mutated: selection %d", s.Sections[0].Selected)
	}
	if next.Sections[0].Selected != 2 {
		t.Fatalf("expected next selection 2, got %d", next.Sections[0].Selected)
	}
}

// Scenario: SET_SEARCH resets every section's selection to 0.
func TestSetSearchResetsAllSelections(t *testing.T) {
	s := New[testRecord]("one", "two")
	s = Apply(s, FetchSuccess(records("a", "b", "c")))
	s.Sections[0].Selected = 2
	s.Sections[1].Selected = 2

	s = Apply(s, SetSearch{Query: "zzz"})
	if s.Query != "zzz" {
		t.Fatalf("expected query set, got %q", s.Query)
	}
	for i, sec := range s.Sections {
		if sec.Selected != 0 {
			t.Fatalf("expected section %d reset to 0, got %d", i, sec.Selected)
		}
	}
}

func TestExitSearchClearsQuery(t *testing.T) {
	s := newTestState("a")
	s = Apply(s, EnterSearch{})
	if !s.Searching {
		t.Fatal("expected search mode entered")
	}
	s = Apply(s, SetSearch{Query: "gm"})
	s = Apply(s, ExitSearch{})
	if s.Searching || s.Query != "" {
		t.Fatalf("expected search exited and query cleared, got %v/%q", s.Searching, s.Query)
	}
}

func TestSubmitSearchKeepsQueryAsFilter(t *testing.T) {
	s := newTestState("a")
	s = Apply(s, EnterSearch{})
	s = Apply(s, SetSearch{Query: "gm"})
	s = Apply(s, SubmitSearch{})
	if s.Searching {
		t.Fatal("expected search mode left")
	}
	if s.Query != "gm" {
		t.Fatalf("expected query kept as active filter, got %q", s.Query)
	}
}

func TestSwitchSectionCycles(t *testing.T) {
	s := New[testRecord]("one", "two")
	s = Apply(s, FetchSuccess(records("a")))

	s = Apply(s, SwitchSection{})
	if s.Focused != 1 {
		t.Fatalf("expected focus 1, got %d", s.Focused)
	}
	s = Apply(s, SwitchSection{})
	if s.Focused != 0 {
		t.Fatalf("expected focus wrapped to 0, got %d", s.Focused)
	}
	s = Apply(s, SwitchSection{Reverse: true})
	if s.Focused != 1 {
		t.Fatalf("expected reverse focus 1, got %d", s.Focused)
	}

	s = Apply(s, OpenDetail{ID: "a"})
	if s.Focused != Detail || s.DetailID != "a" {
		t.Fatalf("expected detail focus, got %d/%q", s.Focused, s.DetailID)
	}
	s = Apply(s, SwitchSection{})
	if s.Focused != 0 {
		t.Fatalf("expected cycle out of detail to 0, got %d", s.Focused)
	}
	s = Apply(s, SwitchSection{})
	s = Apply(s, SwitchSection{})
	if s.Focused != Detail {
		t.Fatalf("expected detail included in cycle while open, got %d", s.Focused)
	}
}

func TestOpenDetailForUnknownIDIsNoOp(t *testing.T) {
	s := newTestState("a")
	next := Apply(s, OpenDetail{ID: "ghost"})
	if !reflect.DeepEqual(s, next) {
		t.Fatalf("expected unknown detail target ignored")
	}
}

// Scenario: CONFIRM_START then CONFIRM_CANCEL never changes items or busy.
func TestConfirmCancelLeavesStateIntact(t *testing.T) {
	s := newTestState("w", "x", "y")
	before := append([]testRecord(nil), s.Items...)

	s = Apply(s, ConfirmStart{ID: "x"})
	s = Apply(s, ConfirmCancel{})

	if s.Confirming != "" {
		t.Fatalf("expected confirmation cleared, got %q", s.Confirming)
	}
	if s.Busy {
		t.Fatal("expected busy untouched")
	}
	if !reflect.DeepEqual(before, s.Items) {
		t.Fatalf("expected items untouched, got %#v", s.Items)
	}
}

func TestConfirmStartReplacesPrior(t *testing.T) {
	s := newTestState("a", "b")
	s = Apply(s, ConfirmStart{ID: "a"})
	s = Apply(s, ConfirmStart{ID: "b"})
	if s.Confirming != "b" {
		t.Fatalf("expected latest confirmation to win, got %q", s.Confirming)
	}
}

func TestConfirmStartForAbsentRecordIsNoOp(t *testing.T) {
	s := newTestState("a")
	s = Apply(s, ConfirmStart{ID: "nope"})
	if s.Confirming != "" {
		t.Fatalf("expected absent record rejected, got %q", s.Confirming)
	}
}

// Scenario: a second ACTION_START while busy is a no-op.
func TestActionStartSingleFlight(t *testing.T) {
	s := newTestState("a")
	s = Apply(s, ActionStart{})
	if !s.Busy {
		t.Fatal("expected busy after action start")
	}
	s.Feedback = &Feedback{Message: "left over", Kind: FeedbackError}

	next := Apply(s, ActionStart{})
	if !reflect.DeepEqual(s, next) {
		t.Fatalf("expected second action start dropped")
	}
}

func TestActionOutcomeTogglesBusy(t *testing.T) {
	s := newTestState("a")
	s = Apply(s, ActionStart{})
	s = Apply(s, ActionSuccess{Message: "reindexed"})
	if s.Busy {
		t.Fatal("expected busy cleared on success")
	}
	if s.Feedback == nil || s.Feedback.Kind != FeedbackSuccess || s.Feedback.Message != "reindexed" {
		t.Fatalf("unexpected feedback %#v", s.Feedback)
	}

	s = Apply(s, ActionStart{})
	s = Apply(s, ActionError{Message: "memory is locked"})
	if s.Busy {
		t.Fatal("expected busy cleared on error")
	}
	if s.Feedback == nil || s.Feedback.Kind != FeedbackError {
		t.Fatalf("unexpected feedback %#v", s.Feedback)
	}
}

func TestExpireFeedbackOnlyDropsSuccess(t *testing.T) {
	s := newTestState("a")
	s.Feedback = &Feedback{Message: "done", Kind: FeedbackSuccess}
	s = Apply(s, ExpireFeedback{})
	if s.Feedback != nil {
		t.Fatal("expected success feedback expired")
	}

	s.Feedback = &Feedback{Message: "failed", Kind: FeedbackError}
	s = Apply(s, ExpireFeedback{})
	if s.Feedback == nil {
		t.Fatal("expected error feedback to persist")
	}
}

func TestDismissFeedbackDropsEitherKind(t *testing.T) {
	s := newTestState("a")
	s.Feedback = &Feedback{Message: "failed", Kind: FeedbackError}
	s = Apply(s, DismissFeedback{})
	if s.Feedback != nil {
		t.Fatal("expected error feedback dismissed")
	}

	s.Feedback = &Feedback{Message: "done", Kind: FeedbackSuccess}
	s = Apply(s, DismissFeedback{})
	if s.Feedback != nil {
		t.Fatal("expected success feedback dismissed")
	}
}

func TestResetReturnsZeroState(t *testing.T) {
	s := New[testRecord]("one", "two")
	s = Apply(s, FetchSuccess(records("a", "b")))
	s = Apply(s, EnterSearch{})
	s = Apply(s, SetSearch{Query: "a"})
	s = Apply(s, ConfirmStart{ID: "a"})

	s = Apply(s, Reset{})
	want := New[testRecord]("one", "two")
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("expected zero state with sections intact, got %#v", s)
	}
}

func TestApplyIgnoresMistypedFetchPayload(t *testing.T) {
	s := newTestState("a")
	next := Apply(s, fetchSuccess{items: "not a slice"})
	if !reflect.DeepEqual(s, next) {
		t.Fatalf("expected mistyped payload ignored")
	}
}
