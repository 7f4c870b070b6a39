// Package editor provides the single-card edit form for the TUI.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// Field indices in focus order. The all-day toggle sits after the text
// inputs.
const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldLocation
	fieldDescription
	fieldAllDay
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Start (ISO 8601)",
	"End (ISO 8601)",
	"Location",
	"Description",
	"All day",
}

// View is the event edit form.
type View struct {
	styles *styles.Styles

	inputs  [fieldAllDay]textinput.Model
	allDay  bool
	focused int

	width  int
	height int
}

// NewView creates a new editor view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{styles: s}
	for i := range v.inputs {
		input := textinput.New()
		input.Placeholder = fieldLabels[i]
		input.CharLimit = 512
		v.inputs[i] = input
	}
	v.inputs[fieldStart].Placeholder = "2024-05-01T19:00:00"
	v.inputs[fieldEnd].Placeholder = "2024-05-01T21:00:00"
	return v
}

// Load fills the form from a record and focuses the title field.
func (v *View) Load(record domain.EventRecord) tea.Cmd {
	v.inputs[fieldTitle].SetValue(record.Title)
	v.inputs[fieldStart].SetValue(record.Start())
	v.inputs[fieldEnd].SetValue(valueOrEmpty(record.EndDateTime))
	v.inputs[fieldLocation].SetValue(record.Location)
	v.inputs[fieldDescription].SetValue(record.Description)
	v.allDay = record.AllDay

	v.focused = fieldTitle
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	return v.inputs[fieldTitle].Focus()
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Record builds the edited record from the form. Blank timestamps
// become nil so downstream consumers see an absent interval rather
// than an empty string.
func (v *View) Record() domain.EventRecord {
	record := domain.EventRecord{
		Title:       strings.TrimSpace(v.inputs[fieldTitle].Value()),
		Location:    strings.TrimSpace(v.inputs[fieldLocation].Value()),
		Description: strings.TrimSpace(v.inputs[fieldDescription].Value()),
		AllDay:      v.allDay,
	}
	if start := strings.TrimSpace(v.inputs[fieldStart].Value()); start != "" {
		record.StartDateTime = &start
	}
	if end := strings.TrimSpace(v.inputs[fieldEnd].Value()); end != "" {
		record.EndDateTime = &end
	}
	return record
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg { return messages.EditClosed{Saved: false} }

	case "enter":
		return v, func() tea.Msg { return messages.EditClosed{Saved: true} }

	case "tab", "down":
		return v, v.focusField((v.focused + 1) % fieldCount)

	case "shift+tab", "up":
		return v, v.focusField((v.focused + fieldCount - 1) % fieldCount)

	case " ":
		if v.focused == fieldAllDay {
			v.allDay = !v.allDay
			return v, nil
		}
	}

	if v.focused < fieldAllDay {
		var cmd tea.Cmd
		v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) focusField(index int) tea.Cmd {
	v.focused = index
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	if index < fieldAllDay {
		return v.inputs[index].Focus()
	}
	return nil
}

// Focused returns the focused field index, for tests.
func (v *View) Focused() int {
	return v.focused
}

// AllDay returns the toggle state.
func (v *View) AllDay() bool {
	return v.allDay
}

// View renders the edit form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Edit Event"))
	b.WriteString("\n\n")

	for i := range v.inputs {
		label := fieldLabels[i]
		if i == v.focused {
			b.WriteString(v.styles.Selected.Render(label))
		} else {
			b.WriteString(v.styles.Normal.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(v.inputs[i].View())
		b.WriteString("\n")
	}

	toggle := "[ ] " + fieldLabels[fieldAllDay]
	if v.allDay {
		toggle = "[x] " + fieldLabels[fieldAllDay]
	}
	if v.focused == fieldAllDay {
		b.WriteString(v.styles.Selected.Render(toggle))
	} else {
		b.WriteString(v.styles.Normal.Render(toggle))
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [space] toggle all day  [enter] save  [esc] cancel"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
