package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

// ChoiceMadeMsg is emitted when the user picks an option.
type ChoiceMadeMsg struct {
	Index  int
	Choice riasec.Choice
}

// BinaryChoice renders one question with its two options. Once Locked is
// set (the question already has an answer) only the chosen option is
// highlighted and input is ignored.
type BinaryChoice struct {
	Index    int
	Question string
	OptionA  string
	OptionB  string
	Cursor   riasec.Choice
	Locked   bool
	Chosen   riasec.Choice
}

// NewBinaryChoice builds the selector for question index. chosen is the
// recorded answer, if any.
func NewBinaryChoice(index int, question, optionA, optionB string, chosen riasec.Choice) BinaryChoice {
	c := BinaryChoice{
		Index:    index,
		Question: question,
		OptionA:  optionA,
		OptionB:  optionB,
		Cursor:   riasec.ChoiceA,
	}
	if chosen.Valid() {
		c.Locked = true
		c.Chosen = chosen
		c.Cursor = chosen
	}
	return c
}

// Update handles selection keys: up/down or a/b to move, enter to pick,
// and A/B letter keys to pick directly.
func (c BinaryChoice) Update(msg tea.Msg) (BinaryChoice, tea.Cmd) {
	if c.Locked {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		c.Cursor = riasec.ChoiceA
	case "down", "j":
		c.Cursor = riasec.ChoiceB
	case "a", "A", "1":
		c.Cursor = riasec.ChoiceA
		return c.pick()
	case "b", "B", "2":
		c.Cursor = riasec.ChoiceB
		return c.pick()
	case "enter", "space":
		return c.pick()
	}
	return c, nil
}

func (c BinaryChoice) pick() (BinaryChoice, tea.Cmd) {
	c.Locked = true
	c.Chosen = c.Cursor
	idx, ch := c.Index, c.Chosen
	return c, func() tea.Msg { return ChoiceMadeMsg{Index: idx, Choice: ch} }
}

// View renders the question and options.
func (c BinaryChoice) View(width int) string {
	q := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width).Render(c.Question)
	return q + "\n\n" + c.option(riasec.ChoiceA, c.OptionA, width) + "\n" + c.option(riasec.ChoiceB, c.OptionB, width)
}

func (c BinaryChoice) option(ch riasec.Choice, label string, width int) string {
	prefix := "  "
	if c.Cursor == ch && !c.Locked {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%s)  %s", prefix, ch, label)
	style := lipgloss.NewStyle().Width(width)

	switch {
	case c.Locked && c.Chosen == ch:
		return style.Inherit(theme.Chosen).Render(line + "  ✓")
	case c.Locked:
		return style.Foreground(theme.TextDim).Render(line)
	case c.Cursor == ch:
		return style.Inherit(theme.Selected).Render(line)
	}
	return style.Inherit(theme.Unselected).Render(line)
}
