package panel

// Event is a reducer input. The concrete event types below form the
// complete transition catalogue; anything else is ignored by Apply.
type Event interface{ isEvent() }

// FetchStart marks the beginning of a list fetch.
type FetchStart struct{}

// fetchSuccess carries a fetched item list. Built via FetchSuccess so
// the payload stays typed at the call site.
type fetchSuccess struct{ items any }

// FetchSuccess builds the event delivering a successfully fetched list.
func FetchSuccess[T Record](items []T) Event { return fetchSuccess{items: items} }

// FetchError marks a failed list fetch. Items are left untouched so the
// last successfully fetched list stays visible alongside the error.
type FetchError struct{ Message string }

// SelectUp moves the focused section's selection up by one with
// wraparound over the currently visible length, supplied by the caller
// since the reducer has no access to the filter.
type SelectUp struct{ Visible int }

// SelectDown is the downward counterpart of SelectUp.
type SelectDown struct{ Visible int }

// SetSearch replaces the search query and resets every section's
// selection to the top.
type SetSearch struct{ Query string }

// EnterSearch routes keyboard input to the search box.
type EnterSearch struct{}

// ExitSearch leaves search mode, clearing the query.
type ExitSearch struct{}

// SubmitSearch leaves search mode keeping the query as the active
// filter, so navigation and actions operate on the filtered lists.
type SubmitSearch struct{}

// SwitchSection cycles focus through the declared sections, including
// the detail pseudo-section while a detail is open.
type SwitchSection struct{ Reverse bool }

// OpenDetail promotes a record to the detail pseudo-section.
type OpenDetail struct{ ID string }

// CloseDetail leaves the detail pseudo-section, returning focus to the
// first section.
type CloseDetail struct{}

// ConfirmStart records a destructive-action target awaiting
// confirmation. Starting a new confirmation replaces any prior one.
type ConfirmStart struct{ ID string }

// ConfirmCancel clears a pending confirmation without side effects.
type ConfirmCancel struct{}

// ActionStart marks a mutating daemon call as in flight.
type ActionStart struct{}

// ActionSuccess reports a resolved mutating call.
type ActionSuccess struct{ Message string }

// ActionError reports a rejected mutating call.
type ActionError struct{ Message string }

// ExpireFeedback drops success feedback after its display delay. Error
// feedback persists.
type ExpireFeedback struct{}

// DismissFeedback drops feedback of either kind on explicit user
// request. Error feedback is only ever cleared this way, by a
// replacing action, or by panel close.
type DismissFeedback struct{}

// Reset returns the panel to its zero state.
type Reset struct{}

func (FetchStart) isEvent() {}
func (fetchSuccess) isEvent() {}
func (FetchError) isEvent() {}
func (SelectUp) isEvent() {}
func (SelectDown) isEvent() {}
func (SetSearch) isEvent() {}
func (EnterSearch) isEvent() {}
func (ExitSearch) isEvent() {}
func (SubmitSearch) isEvent() {}
func (SwitchSection) isEvent() {}
func (OpenDetail) isEvent() {}
func (CloseDetail) isEvent() {}
func (ConfirmStart) isEvent() {}
func (ConfirmCancel) isEvent() {}
func (ActionStart) isEvent() {}
func (ActionSuccess) isEvent() {}
func (ActionError) isEvent() {}
func (ExpireFeedback) isEvent() {}
func (DismissFeedback) isEvent() {}
func (Reset) isEvent() {}

// Apply is the panel reducer: a total, pure transition function. It
// never performs I/O and never panics; unknown or malformed events
// return the state unchanged.
func Apply[T Record](s State[T], ev Event) State[T] {
	switch ev := ev.(type) {

	case FetchStart:
		s.Fetch = FetchLoading
		s.ErrorMessage = ""
		return s

	case fetchSuccess:
		items, ok := ev.items.([]T)
		if !ok {
			return s
		}
		s.Fetch = FetchSucceeded
		s.Items = items
		s.Sections = cloneSections(s.Sections)
		for i := range s.Sections {
			s.Sections[i].Selected = ClampIndex(s.Sections[i].Selected, len(items))
		}
		// A confirmation target that vanished from the list is cleared
		// in the same transition; it must never dangle.
		if !containsID(items, s.Confirming) {
			s.Confirming = ""
		}
		if s.DetailID != "" && !containsID(items, s.DetailID) {
			s.DetailID = ""
			if s.Focused == Detail {
				s.Focused = 0
			}
		}
		return s

	case FetchError:
		s.Fetch = FetchFailed
		s.ErrorMessage = ev.Message
		return s

	case SelectUp:
		return moveSelection(s, -1, ev.Visible)

	case SelectDown:
		return moveSelection(s, 1, ev.Visible)

	case SetSearch:
		s.Query = ev.Query
		s.Sections = resetSelections(s.Sections)
		return s

	case EnterSearch:
		s.Searching = true
		return s

	case ExitSearch:
		s.Searching = false
		s.Query = ""
		s.Sections = resetSelections(s.Sections)
		return s

	case SubmitSearch:
		s.Searching = false
		return s

	case SwitchSection:
		s.Focused = CycleFocus(s.Focused, len(s.Sections), s.DetailID != "", ev.Reverse)
		return s

	case OpenDetail:
		if !containsID(s.Items, ev.ID) {
			return s
		}
		s.DetailID = ev.ID
		s.Focused = Detail
		return s

	case CloseDetail:
		s.DetailID = ""
		if s.Focused == Detail {
			s.Focused = 0
		}
		return s

	case ConfirmStart:
		if !containsID(s.Items, ev.ID) {
			return s
		}
		s.Confirming = ev.ID
		return s

	case ConfirmCancel:
		s.Confirming = ""
		return s

	case ActionStart:
		if s.Busy {
			// Single-flight: a second dispatch while one is in flight
			// is silently dropped.
			return s
		}
		s.Busy = true
		s.Feedback = nil
		return s

	case ActionSuccess:
		s.Busy = false
		s.Feedback = &Feedback{Message: ev.Message, Kind: FeedbackSuccess}
		return s

	case ActionError:
		s.Busy = false
		s.Feedback = &Feedback{Message: ev.Message, Kind: FeedbackError}
		return s

	case ExpireFeedback:
		if s.Feedback != nil && s.Feedback.Kind == FeedbackSuccess {
			s.Feedback = nil
		}
		return s

	case DismissFeedback:
		s.Feedback = nil
		return s

	case Reset:
		return New[T](s.sectionNames()...)
	}

	return s
}

// moveSelection shifts the focused section's selection by delta with
// wraparound over the visible length. Navigation on an empty visible
// list, or while a detail is focused, is a no-op.
func moveSelection[T Record](s State[T], delta, visible int) State[T] {
	if s.Focused == Detail || s.Focused < 0 || s.Focused >= len(s.Sections) {
		return s
	}
	if visible <= 0 {
		return s
	}
	s.Sections = cloneSections(s.Sections)
	sec := &s.Sections[s.Focused]
	sec.Selected = Move(sec.Selected, visible, delta)
	return s
}

func resetSelections(sections []Section) []Section {
	dup := cloneSections(sections)
	for i := range dup {
		dup[i].Selected = 0
	}
	return dup
}
