package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minatgo/minatgo/internal/riasec"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	picked := ""
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd { picked = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "Mulai", Action: action("start")},
		{Label: "Hasil", Action: action("result"), Disabled: true},
		{Label: "Tentang", Action: action("about")},
	})

	m, _ = m.Update(key("down"))
	if m.Selected != 2 {
		t.Fatalf("expected selection to skip disabled item, got %d", m.Selected)
	}
	m.Update(key("enter"))
	if picked != "about" {
		t.Errorf("expected about, got %q", picked)
	}

	picked = ""
	m.Update(key("2"))
	if picked != "" {
		t.Errorf("disabled item should not fire, got %q", picked)
	}
	m.Update(key("1"))
	if picked != "start" {
		t.Errorf("expected start via shortcut, got %q", picked)
	}
}

func TestBinaryChoicePicksOnce(t *testing.T) {
	c := NewBinaryChoice(4, "Pilih", "Merakit", "Meneliti", "")

	c, cmd := c.Update(key("b"))
	if cmd == nil {
		t.Fatal("expected a ChoiceMadeMsg command")
	}
	msg, ok := cmd().(ChoiceMadeMsg)
	if !ok || msg.Index != 4 || msg.Choice != riasec.ChoiceB {
		t.Fatalf("unexpected message %#v", msg)
	}

	_, cmd = c.Update(key("a"))
	if cmd != nil {
		t.Error("locked choice must ignore further input")
	}
	if !strings.Contains(c.View(60), "✓") {
		t.Error("chosen option should be marked")
	}
}

func TestBinaryChoicePrelocked(t *testing.T) {
	c := NewBinaryChoice(0, "Pilih", "x", "y", riasec.ChoiceA)
	if !c.Locked || c.Chosen != riasec.ChoiceA {
		t.Fatal("expected existing answer to lock the selector")
	}
}

func TestProgressBarFraction(t *testing.T) {
	cases := []struct {
		value, max int
		want       float64
	}{
		{0, 30, 0},
		{15, 30, 0.5},
		{40, 30, 1},
		{3, 0, 0},
	}
	for _, tc := range cases {
		p := ProgressBar{Value: tc.value, Max: tc.max, Width: 40}
		if got := p.Fraction(); got != tc.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tc.value, tc.max, got, tc.want)
		}
		if p.View() == "" {
			t.Error("empty view")
		}
	}
}
