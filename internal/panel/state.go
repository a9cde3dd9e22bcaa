// Package panel implements the daemon-synchronized panel engine shared
// by every hearth panel: a pure reducer over an explicit panel state
// value, a visibility-scoped poll loop, a single-flight action
// executor, substring search filtering, keyboard section navigation,
// and a two-step confirmation gate for destructive actions.
//
// The engine holds no domain knowledge beyond the Record interface;
// each concrete panel is a thin configuration over it.
package panel

// Record is the minimal contract a domain record must satisfy to be
// hosted by a panel.
type Record interface {
	// RecordID returns a stable identifier for the record.
	RecordID() string
	// SearchFields returns the text fields search queries match against.
	SearchFields() []string
}

// FetchState is the lifecycle of the most recent list fetch.
type FetchState int

const (
	FetchIdle FetchState = iota
	FetchLoading
	FetchSucceeded
	FetchFailed
)

// FeedbackKind distinguishes success feedback (auto-expires) from error
// feedback (persists until dismissed or replaced).
type FeedbackKind int

const (
	FeedbackSuccess FeedbackKind = iota
	FeedbackError
)

// Feedback is a transient user-visible message from the last action.
type Feedback struct {
	Message string
	Kind    FeedbackKind
}

// Detail is the sentinel focus value used while a single record is
// being inspected instead of a section list.
const Detail = -1

// Section is one independently navigable sub-list within a panel.
type Section struct {
	Name string
	// Selected indexes into the section's currently visible (filtered)
	// list. It is held at 0 for an empty list and never dereferenced
	// without a length guard.
	Selected int
}

// State is the value held per open panel instance. It is owned
// exclusively by one panel and only ever changed through Apply.
type State[T Record] struct {
	Fetch        FetchState
	Items        []T
	Sections     []Section
	Focused      int // index into Sections, or Detail
	Query        string
	Searching    bool
	Confirming   string // record id pending destructive confirmation, "" when none
	Busy         bool
	Feedback     *Feedback
	ErrorMessage string
	// DetailID is the record promoted to the detail pseudo-section,
	// "" when no detail is open.
	DetailID string
}

// New returns the default state for a panel with the given sections.
// A panel always has at least one section.
func New[T Record](sectionNames ...string) State[T] {
	sections := make([]Section, len(sectionNames))
	for i, name := range sectionNames {
		sections[i] = Section{Name: name}
	}
	return State[T]{Sections: sections}
}

// sectionNames recovers the declared section names, used by Reset to
// rebuild the zero state for the same panel shape.
func (s State[T]) sectionNames() []string {
	names := make([]string, len(s.Sections))
	for i, sec := range s.Sections {
		names[i] = sec.Name
	}
	return names
}

// cloneSections copies the section slice so a reducer transition never
// mutates the caller's state through the shared backing array.
func cloneSections(sections []Section) []Section {
	dup := make([]Section, len(sections))
	copy(dup, sections)
	return dup
}

// containsID reports whether any item carries the given record id.
func containsID[T Record](items []T, id string) bool {
	if id == "" {
		return false
	}
	for _, item := range items {
		if item.RecordID() == id {
			return true
		}
	}
	return false
}
