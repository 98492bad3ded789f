package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minatgo/minatgo/internal/ui/theme"
)

// Field is a labelled text input with an optional validation message.
type Field struct {
	Label string
	Model textinput.Model
	Err   string
}

// NewField creates a field with a character limit.
func NewField(label, placeholder string, charLimit int) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return Field{Label: label, Model: ti}
}

// Focus focuses the input.
func (f *Field) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes focus.
func (f *Field) Blur() {
	f.Model.Blur()
}

// Update forwards msg to the input.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// Value returns the current input value.
func (f Field) Value() string {
	return f.Model.Value()
}

// SetValue replaces the input value.
func (f *Field) SetValue(v string) {
	f.Model.SetValue(v)
}

// View renders label, input and error.
func (f Field) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	if f.Model.Focused() {
		label = theme.Selected
	}
	out := label.Render(f.Label) + "\n" + f.Model.View()
	if f.Err != "" {
		out += "\n" + theme.Warning.Render("✗ "+f.Err)
	}
	return out
}
