package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/hearthware/hearth/internal/panel"
)

// actionDef wires one panel-specific key to a mutating daemon call.
type actionDef[T panel.Record] struct {
	key         string
	name        string
	hint        string
	destructive bool
	// enabled gates the action on the selected record; nil means always.
	enabled func(T) bool
	// confirm builds the confirmation prompt for destructive actions.
	confirm func(T) string
	run     func(ctx context.Context, id string) (string, error)
}

// paneConfig is everything that distinguishes one concrete panel from
// another: the record type, the partition into sections, the poll
// interval, the action key map, and rendering.
type paneConfig[T panel.Record] struct {
	id        string
	title     string
	sections  []string
	sectionOf panel.Sectioner[T]
	interval  time.Duration
	fetch     panel.FetchFunc[T]
	actions   []actionDef[T]
	empty     string

	// row renders one list row at the given width, selection excluded.
	row func(T, int) string
	// detail renders the expanded record view; nil disables detail.
	detail func(T, int) string
	// editFor builds the edit overlay for a record; nil disables editing.
	editFor func(T, int) *editForm
	// saveEdit persists an edit overlay's values to the daemon.
	saveEdit func(ctx context.Context, f *editForm) (string, error)
	// extraKey handles panel-specific keys outside the action map.
	extraKey func(p *pane[T], k string) tea.Cmd
	// onOpen runs before the first fetch, e.g. to load persisted prefs.
	onOpen func(p *pane[T])
}

// paneStatus is what the shared status bar needs to know about the
// active pane.
type paneStatus struct {
	Mode          panel.Mode
	Busy          bool
	Fetch         panel.FetchState
	ErrorMessage  string
	Feedback      *panel.Feedback
	ConfirmPrompt string
	Editing       bool
	Hints         string
}

// panelPane is the non-generic surface the root model drives panes
// through.
type panelPane interface {
	ID() string
	Title() string
	Open() tea.Cmd
	Close()
	// Refresh triggers an out-of-band fetch, e.g. after a daemon restart.
	Refresh() tea.Cmd
	// HandleKey processes a key; the bool reports a close request.
	HandleKey(msg tea.KeyMsg) (tea.Cmd, bool)
	// HandleMsg processes non-key messages; the bool reports consumption.
	HandleMsg(msg tea.Msg) (tea.Cmd, bool)
	View(width, height int) string
	Status() paneStatus
}

// pane hosts one panel instance: engine state plus the bubbles widgets
// around it. All state transitions go through panel.Apply.
type pane[T panel.Record] struct {
	cfg     paneConfig[T]
	state   panel.State[T]
	fetcher *panel.Fetcher[T]
	exec    *panel.Executor[T]
	input   textinput.Model
	spin    spinner.Model
	match   panel.MatchFunc

	// pending is the destructive action awaiting confirmation; it is
	// cleared whenever state.Confirming clears.
	pending *actionDef[T]
	form    *editForm
	// note is an extra header annotation, e.g. the extraction mode.
	note string
}

func newPane[T panel.Record](cfg paneConfig[T], match panel.MatchFunc) *pane[T] {
	input := textinput.New()
	input.Placeholder = "search"
	input.Prompt = "/ "
	input.PromptStyle = searchPromptStyle
	input.CharLimit = 80

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = dimTextStyle

	return &pane[T]{
		cfg:     cfg,
		state:   panel.New[T](cfg.sections...),
		fetcher: panel.NewFetcher(cfg.id, cfg.fetch, cfg.interval),
		exec:    panel.NewExecutor[T](cfg.id),
		input:   input,
		spin:    spin,
		match:   match,
	}
}

func (p *pane[T]) ID() string    { return p.cfg.id }
func (p *pane[T]) Title() string { return p.cfg.title }

// Open resets the panel to its zero state and arms the poll loop.
func (p *pane[T]) Open() tea.Cmd {
	p.state = panel.New[T](p.cfg.sections...)
	p.state = panel.Apply(p.state, panel.FetchStart{})
	p.pending = nil
	p.form = nil
	p.input.Reset()
	if p.cfg.onOpen != nil {
		p.cfg.onOpen(p)
	}
	return tea.Batch(p.fetcher.Open(), p.spin.Tick)
}

// Close disarms the poll loop and discards panel state. Results from
// in-flight calls are dropped by the generation check when they land.
func (p *pane[T]) Close() {
	p.fetcher.Close()
	p.state = panel.Apply(p.state, panel.Reset{})
	p.pending = nil
	p.form = nil
	p.input.Reset()
}

func (p *pane[T]) Refresh() tea.Cmd {
	return p.fetcher.Refresh()
}

// ── Message handling ─────────────────────────────────────────────

func (p *pane[T]) HandleMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {

	case panel.FetchedMsg:
		if msg.Panel != p.cfg.id {
			return nil, false
		}
		if !p.fetcher.Live(msg.Gen) {
			return nil, true
		}
		if msg.Err != nil {
			// Every transport-level failure collapses to the one
			// generic message at this boundary.
			p.state = panel.Apply(p.state, panel.FetchError{Message: panel.Unreachable})
			return nil, true
		}
		items, ok := msg.Items.([]T)
		if !ok {
			return nil, true
		}
		p.state = panel.Apply(p.state, panel.FetchSuccess(items))
		if p.state.Confirming == "" {
			p.pending = nil
		}
		return nil, true

	case panel.PollTickMsg:
		if msg.Panel != p.cfg.id {
			return nil, false
		}
		return p.fetcher.OnTick(msg), true

	case panel.ActionDoneMsg:
		if msg.Panel != p.cfg.id {
			return nil, false
		}
		if !p.fetcher.Live(msg.Gen) {
			return nil, true
		}
		if msg.Err != nil {
			p.state = panel.Apply(p.state, panel.ActionError{Message: msg.Err.Error()})
			return nil, true
		}
		p.state = panel.Apply(p.state, panel.ActionSuccess{Message: msg.Message})
		// Successful mutations are reflected immediately instead of
		// waiting for the next poll tick.
		return tea.Batch(p.fetcher.Refresh(), p.exec.ExpireCmd(p.fetcher.Gen())), true

	case panel.FeedbackExpiredMsg:
		if msg.Panel != p.cfg.id {
			return nil, false
		}
		if p.fetcher.Live(msg.Gen) {
			p.state = panel.Apply(p.state, panel.ExpireFeedback{})
		}
		return nil, true

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return cmd, true
	}

	return nil, false
}

// ── Key handling ─────────────────────────────────────────────────

func (p *pane[T]) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.form != nil {
		return p.handleFormKey(msg), false
	}

	switch panel.ModeOf(p.state) {
	case panel.ModeConfirm:
		return p.handleConfirmKey(msg), false
	case panel.ModeSearch:
		return p.handleSearchKey(msg), false
	case panel.ModeDetail:
		return p.handleDetailKey(msg), false
	default:
		return p.handleListKey(msg)
	}
}

// handleConfirmKey routes through the explicit gate table; stray keys
// are swallowed, never forwarded to navigation.
func (p *pane[T]) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch panel.GateKey(msg.String()) {
	case panel.GateAccept:
		id := p.state.Confirming
		action := p.pending
		p.state = panel.Apply(p.state, panel.ConfirmCancel{})
		p.pending = nil
		if action == nil || id == "" {
			return nil
		}
		return p.dispatch(action, id)
	case panel.GateDismiss:
		p.state = panel.Apply(p.state, panel.ConfirmCancel{})
		p.pending = nil
	}
	return nil
}

func (p *pane[T]) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, searchKeys.Cancel):
		p.state = panel.Apply(p.state, panel.ExitSearch{})
		p.input.Reset()
		p.input.Blur()
		return nil
	case key.Matches(msg, searchKeys.Submit):
		p.state = panel.Apply(p.state, panel.SubmitSearch{})
		p.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.state = panel.Apply(p.state, panel.SetSearch{Query: p.input.Value()})
	return cmd
}

func (p *pane[T]) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, listKeys.Dismiss), key.Matches(msg, listKeys.Close):
		p.state = panel.Apply(p.state, panel.CloseDetail{})
		return nil
	case key.Matches(msg, listKeys.NextSec):
		p.state = panel.Apply(p.state, panel.SwitchSection{})
		return nil
	case key.Matches(msg, listKeys.PrevSec):
		p.state = panel.Apply(p.state, panel.SwitchSection{Reverse: true})
		return nil
	}
	// Action keys stay live on the detail record.
	return p.handleActionKey(msg.String())
}

func (p *pane[T]) handleListKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, listKeys.Dismiss):
		// Esc peels back one layer at a time: error feedback first,
		// then an applied filter, then the panel itself.
		if p.state.Feedback != nil && p.state.Feedback.Kind == panel.FeedbackError {
			p.state = panel.Apply(p.state, panel.DismissFeedback{})
			return nil, false
		}
		if p.state.Query != "" {
			p.state = panel.Apply(p.state, panel.ExitSearch{})
			p.input.Reset()
			return nil, false
		}
		return nil, true

	case key.Matches(msg, listKeys.Close):
		return nil, true

	case key.Matches(msg, listKeys.Up):
		p.state = panel.Apply(p.state, panel.SelectUp{Visible: p.focusedVisibleLen()})
		return nil, false

	case key.Matches(msg, listKeys.Down):
		p.state = panel.Apply(p.state, panel.SelectDown{Visible: p.focusedVisibleLen()})
		return nil, false

	case key.Matches(msg, listKeys.NextSec):
		p.state = panel.Apply(p.state, panel.SwitchSection{})
		return nil, false

	case key.Matches(msg, listKeys.PrevSec):
		p.state = panel.Apply(p.state, panel.SwitchSection{Reverse: true})
		return nil, false

	case key.Matches(msg, listKeys.Search):
		p.state = panel.Apply(p.state, panel.EnterSearch{})
		p.input.SetValue(p.state.Query)
		return p.input.Focus(), false

	case key.Matches(msg, listKeys.Detail):
		if p.cfg.detail == nil {
			return nil, false
		}
		if item, ok := p.currentItem(); ok {
			p.state = panel.Apply(p.state, panel.OpenDetail{ID: item.RecordID()})
		}
		return nil, false
	}

	return p.handleActionKey(msg.String()), false
}

func (p *pane[T]) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, formKeys.Cancel):
		p.form = nil
		return nil
	case key.Matches(msg, formKeys.Next):
		p.form.FocusNext()
		return nil
	case key.Matches(msg, formKeys.Save):
		form := p.form
		save := p.cfg.saveEdit
		if save == nil {
			p.form = nil
			return nil
		}
		var cmd tea.Cmd
		p.state, cmd = p.exec.Do(p.state, p.fetcher.Gen(), "save", func(ctx context.Context) (string, error) {
			return save(ctx, form)
		})
		if cmd != nil {
			// Dispatched: the form closes and the outcome arrives as
			// action feedback once the daemon has answered.
			p.form = nil
		}
		return cmd
	}

	var cmd tea.Cmd
	if p.form.focusIndex == 0 {
		ti := p.form.TitleInput()
		*ti, cmd = ti.Update(msg)
	} else {
		ca := p.form.ContentArea()
		*ca, cmd = ca.Update(msg)
	}
	return cmd
}

// handleActionKey looks the key up in the panel's action map. Enabled
// non-destructive actions dispatch immediately; destructive ones open
// the confirmation gate on the target record.
func (p *pane[T]) handleActionKey(k string) tea.Cmd {
	for i := range p.cfg.actions {
		action := &p.cfg.actions[i]
		if action.key != k {
			continue
		}
		item, ok := p.targetItem()
		if !ok {
			return nil
		}
		if action.enabled != nil && !action.enabled(item) {
			return nil
		}
		if action.destructive {
			p.state = panel.Apply(p.state, panel.ConfirmStart{ID: item.RecordID()})
			if p.state.Confirming == item.RecordID() {
				p.pending = action
			}
			return nil
		}
		return p.dispatch(action, item.RecordID())
	}

	if p.cfg.editFor != nil && k == "e" {
		if item, ok := p.targetItem(); ok {
			p.form = p.cfg.editFor(item, 72)
		}
		return nil
	}

	if p.cfg.extraKey != nil {
		return p.cfg.extraKey(p, k)
	}
	return nil
}

func (p *pane[T]) dispatch(action *actionDef[T], id string) tea.Cmd {
	run := action.run
	var cmd tea.Cmd
	p.state, cmd = p.exec.Do(p.state, p.fetcher.Gen(), action.name, func(ctx context.Context) (string, error) {
		return run(ctx, id)
	})
	return cmd
}

// ── Visibility helpers ───────────────────────────────────────────

func (p *pane[T]) visible() [][]T {
	return panel.VisibleSections(p.state, p.cfg.sectionOf, p.match)
}

func (p *pane[T]) focusedVisibleLen() int {
	vis := p.visible()
	if p.state.Focused < 0 || p.state.Focused >= len(vis) {
		return 0
	}
	return len(vis[p.state.Focused])
}

// currentItem resolves the selected item of the focused section,
// clamping the stored index against the visible list on every access.
func (p *pane[T]) currentItem() (T, bool) {
	var zero T
	vis := p.visible()
	f := p.state.Focused
	if f < 0 || f >= len(vis) {
		return zero, false
	}
	return panel.Current(vis[f], p.state.Sections[f].Selected)
}

// targetItem is the record an action key applies to: the detail record
// while one is focused, otherwise the current list selection.
func (p *pane[T]) targetItem() (T, bool) {
	var zero T
	if p.state.Focused == panel.Detail && p.state.DetailID != "" {
		for _, item := range p.state.Items {
			if item.RecordID() == p.state.DetailID {
				return item, true
			}
		}
		return zero, false
	}
	return p.currentItem()
}

func (p *pane[T]) detailItem() (T, bool) {
	var zero T
	if p.state.DetailID == "" {
		return zero, false
	}
	for _, item := range p.state.Items {
		if item.RecordID() == p.state.DetailID {
			return item, true
		}
	}
	return zero, false
}

// ── Status ───────────────────────────────────────────────────────

func (p *pane[T]) Status() paneStatus {
	st := paneStatus{
		Mode:         panel.ModeOf(p.state),
		Busy:         p.state.Busy,
		Fetch:        p.state.Fetch,
		ErrorMessage: p.state.ErrorMessage,
		Feedback:     p.state.Feedback,
		Editing:      p.form != nil,
		Hints:        p.hints(),
	}
	if p.state.Confirming != "" {
		st.ConfirmPrompt = p.confirmPrompt()
	}
	return st
}

func (p *pane[T]) confirmPrompt() string {
	if p.pending == nil || p.pending.confirm == nil {
		return "Are you sure? (y/n)"
	}
	for _, item := range p.state.Items {
		if item.RecordID() == p.state.Confirming {
			return p.pending.confirm(item)
		}
	}
	return "Are you sure? (y/n)"
}

func (p *pane[T]) hints() string {
	parts := []string{
		keyHint("j/k", "navigate"),
		keyHint("Tab", "section"),
		keyHint("/", "search"),
	}
	if p.cfg.detail != nil {
		parts = append(parts, keyHint("Enter", "detail"))
	}
	for _, action := range p.cfg.actions {
		parts = append(parts, keyHint(action.key, action.hint))
	}
	if p.cfg.editFor != nil {
		parts = append(parts, keyHint("e", "edit"))
	}
	parts = append(parts, keyHint("Esc", "close"))
	return strings.Join(parts, "  ")
}

// ── View ─────────────────────────────────────────────────────────

func (p *pane[T]) View(width, height int) string {
	if p.form != nil {
		return p.form.View()
	}

	if p.state.Focused == panel.Detail {
		if item, ok := p.detailItem(); ok && p.cfg.detail != nil {
			return p.cfg.detail(item, width)
		}
	}

	var header []string
	if p.note != "" {
		header = append(header, dimTextStyle.Render(p.note))
	}
	if p.state.Searching {
		header = append(header, p.input.View())
	} else if p.state.Query != "" {
		header = append(header, filterNoteStyle.Render(fmt.Sprintf("filter: %q (Esc clears)", p.state.Query)))
	}

	if p.state.Fetch == panel.FetchLoading && len(p.state.Items) == 0 {
		header = append(header, p.spin.View()+dimTextStyle.Render(" Loading..."))
		return strings.Join(header, "\n")
	}

	lines, selected := p.listLines(width)
	if len(lines) == 0 {
		header = append(header, dimTextStyle.Render(p.cfg.empty))
		return strings.Join(header, "\n")
	}

	body := windowLines(lines, selected, height-len(header))
	return strings.Join(append(header, body...), "\n")
}

// listLines renders every section into a flat line list and reports
// which line carries the selection of the focused section.
func (p *pane[T]) listLines(width int) (lines []string, selected int) {
	vis := p.visible()
	selected = -1

	for si, sec := range p.state.Sections {
		items := vis[si]
		if si > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, sectionHeaderStyle.Render(fmt.Sprintf("%s (%d)", sec.Name, len(items))))

		if len(items) == 0 {
			lines = append(lines, dimTextStyle.Render("  (none)"))
			continue
		}

		cursor := panel.ClampIndex(sec.Selected, len(items))
		for ii, item := range items {
			row := p.cfg.row(item, width-2)
			row = ansi.Truncate(row, width-2, "…")
			if si == p.state.Focused && ii == cursor {
				row = selectedItemStyle.Width(width - 2).Render(row)
				selected = len(lines)
			}
			lines = append(lines, "  "+row)
		}
	}
	return lines, selected
}

// windowLines clips the rendered lines to the viewport, keeping the
// selected line visible and marking clipped overflow on both ends.
func windowLines(lines []string, selected, height int) []string {
	if height < 1 {
		height = 1
	}
	if len(lines) <= height {
		return lines
	}

	offset := 0
	if selected >= height {
		offset = selected - height + 1
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
		offset = end - height
	}

	window := make([]string, 0, height)
	window = append(window, lines[offset:end]...)
	if offset > 0 {
		window[0] = dimTextStyle.Render("  ▲ more")
	}
	if end < len(lines) {
		window[len(window)-1] = dimTextStyle.Render("  ▼ more")
	}
	return window
}
