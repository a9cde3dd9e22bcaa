package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// editForm is the two-field overlay used to edit a record's title and
// body (currently only the Memory panel uses it). The edited values are
// sent to the daemon and applied locally only after it acknowledges.
type editForm struct {
	recordID string

	titleInput  textinput.Model
	contentArea textarea.Model

	focusIndex int // 0=title, 1=content
	width      int
}

func newEditForm(recordID, title, content string, width int) *editForm {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 200
	ti.Width = width - 8
	ti.SetValue(title)

	ca := textarea.New()
	ca.Placeholder = "Content"
	ca.SetWidth(width - 8)
	ca.SetHeight(8)
	ca.SetValue(content)

	f := &editForm{
		recordID:    recordID,
		titleInput:  ti,
		contentArea: ca,
		width:       width,
	}
	f.titleInput.Focus()
	return f
}

// FocusNext moves to the next field.
func (f *editForm) FocusNext() {
	f.titleInput.Blur()
	f.contentArea.Blur()
	f.focusIndex = (f.focusIndex + 1) % 2
	if f.focusIndex == 0 {
		f.titleInput.Focus()
	} else {
		f.contentArea.Focus()
	}
}

// Title returns the current title value.
func (f *editForm) Title() string { return f.titleInput.Value() }

// Content returns the current content value.
func (f *editForm) Content() string { return f.contentArea.Value() }

// TitleInput returns the title input model for update forwarding.
func (f *editForm) TitleInput() *textinput.Model { return &f.titleInput }

// ContentArea returns the content textarea model for update forwarding.
func (f *editForm) ContentArea() *textarea.Model { return &f.contentArea }

// View renders the edit form overlay.
func (f *editForm) View() string {
	formWidth := f.width
	if formWidth > 72 {
		formWidth = 72
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := make([]string, 0, 8)
	parts = append(parts, overlayTitleStyle.Render("Edit Memory"))

	label := lipgloss.NewStyle().Bold(true).Render("Title:")
	parts = append(parts, label, f.titleInput.View(), "")

	label = lipgloss.NewStyle().Bold(true).Render("Content:")
	parts = append(parts, label, f.contentArea.View(), "")

	footer := dimTextStyle.Render("Ctrl+s save  |  Tab next field  |  Esc cancel")
	parts = append(parts, footer)

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
