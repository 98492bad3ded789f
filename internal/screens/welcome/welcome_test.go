package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/minatgo/minatgo/internal/router"
	"github.com/minatgo/minatgo/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Beranda" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestLettersRevealThenBanner(t *testing.T) {
	w, _ := newTestWelcome()
	if got := w.lettersShown(); got != 1 {
		t.Errorf("expected 1 letter at start, got %d", got)
	}
	if strings.Contains(w.View(100, 30), "tekan tombol") {
		t.Error("hint should not be visible at start")
	}

	sendTicks(w, 6)
	if got := w.lettersShown(); got != 6 {
		t.Errorf("expected all 6 letters, got %d", got)
	}
	if !strings.Contains(w.View(100, 30), "tekan tombol") {
		t.Error("hint should be visible once the banner is shown")
	}
}

func TestKeypressTransitionsOnce(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'x'}); cmd != nil {
		t.Error("second keypress should be ignored")
	}
	if *calls != 1 {
		t.Errorf("expected factory called once, got %d", *calls)
	}
}

func TestAutoTransitionAfterAnimation(t *testing.T) {
	w, calls := newTestWelcome()
	cmd := sendTicks(w, int(totalDur/tickInterval))
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg after the animation")
	}
	if *calls != 1 {
		t.Errorf("expected factory called once, got %d", *calls)
	}
}
