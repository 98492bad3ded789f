package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/router"
	"github.com/minatgo/minatgo/internal/screen"
	"github.com/minatgo/minatgo/internal/ui/components"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

const (
	tickInterval = 150 * time.Millisecond
	bannerAt     = 900 * time.Millisecond
	totalDur     = 3 * time.Second
)

type tickMsg time.Time

// WelcomeScreen reveals the six category letters one by one, then the
// banner, and hands over to the home screen on a key press or when the
// animation ends.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// lettersShown is how many category letters are visible.
func (w *WelcomeScreen) lettersShown() int {
	n := int(w.elapsed/tickInterval) + 1
	return min(n, len(riasec.All))
}

func (w *WelcomeScreen) View(width, height int) string {
	letterStyle := lipgloss.NewStyle().
		Foreground(theme.Bg).
		Background(theme.Secondary).
		Bold(true).
		Padding(0, 1)

	letters := make([]string, 0, len(riasec.All))
	for i, c := range riasec.All {
		if i < w.lettersShown() {
			letters = append(letters, letterStyle.Render(string(c)))
		} else {
			letters = append(letters, "   ")
		}
	}
	sections := []string{strings.Join(letters, " ")}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			components.Banner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Tes minat dan bakat untuk memilih jurusan"),
			"",
			theme.Hint.Render("tekan tombol apa saja untuk lanjut"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
