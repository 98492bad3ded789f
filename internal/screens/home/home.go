package home

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/router"
	"github.com/minatgo/minatgo/internal/screen"
	"github.com/minatgo/minatgo/internal/screens/about"
	"github.com/minatgo/minatgo/internal/screens/contact"
	quizscreen "github.com/minatgo/minatgo/internal/screens/quiz"
	"github.com/minatgo/minatgo/internal/screens/result"
	"github.com/minatgo/minatgo/internal/ui/components"
	"github.com/minatgo/minatgo/internal/ui/layout"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

// lastResultMsg carries the dominant set of the stored snapshot.
type lastResultMsg struct {
	Dominant []riasec.Category
	Found    bool
	Corrupt  bool
}

// themeToggledMsg reports the outcome of a theme switch.
type themeToggledMsg struct {
	Dark bool
	Err  error
}

const (
	itemStart = iota
	itemResult
	itemAbout
	itemContact
	itemTheme
	itemExit
)

// HomeScreen is the main menu.
type HomeScreen struct {
	svc        screen.Services
	menu       components.Menu
	last       lastResultMsg
	notice     string
	newQuiz    func() screen.Screen
	lastResult func() screen.Screen
}

var (
	_ screen.Screen         = (*HomeScreen)(nil)
	_ screen.Resumer        = (*HomeScreen)(nil)
	_ screen.StatusProvider = (*HomeScreen)(nil)
)

// New creates the home screen over svc.
func New(svc screen.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}

	// The quiz hands over to the result screen and the result screen can
	// start a new quiz, so the factories refer to each other.
	h.newQuiz = func() screen.Screen { return quizscreen.New(svc, h.lastResult) }
	h.lastResult = func() screen.Screen { return result.New(svc, h.newQuiz) }

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		itemStart:   {Label: "Mulai Tes", Action: push(h.newQuiz)},
		itemResult:  {Label: "Hasil Terakhir", Action: push(h.lastResult)},
		itemAbout:   {Label: "Tentang RIASEC", Action: push(func() screen.Screen { return about.New() })},
		itemContact: {Label: "Kontak", Action: push(func() screen.Screen { return contact.New(svc.Contacts) })},
		itemTheme:   {Label: themeLabel(svc), Action: h.toggleTheme},
		itemExit:    {Label: "Keluar", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func themeLabel(svc screen.Services) string {
	if svc.Prefs != nil && svc.Prefs.DarkMode() {
		return "Mode Terang"
	}
	return "Mode Gelap"
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLast()
}

// Resume refreshes the last-result box after returning from a quiz.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadLast()
}

func (h *HomeScreen) loadLast() tea.Cmd {
	archive := h.svc.Archive
	if archive == nil {
		return nil
	}
	return func() tea.Msg {
		snap, err := archive.Load(context.Background())
		if errors.Is(err, qz.ErrCorruptSnapshot) {
			// Load has already cleared the key.
			return lastResultMsg{Corrupt: true}
		}
		if err != nil {
			return lastResultMsg{}
		}
		res, err := snap.Result()
		if err != nil {
			return lastResultMsg{}
		}
		return lastResultMsg{Dominant: res.Dominant, Found: true}
	}
}

// toggleTheme only persists the new mode. The palette is package state read
// by every View, so it is swapped in Update when themeToggledMsg arrives.
func (h *HomeScreen) toggleTheme() tea.Cmd {
	prefs := h.svc.Prefs
	if prefs == nil {
		return nil
	}
	return func() tea.Msg {
		dark, err := prefs.Toggle(context.Background())
		return themeToggledMsg{Dark: dark, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Beranda"
}

func (h *HomeScreen) Status() string {
	if h.svc.Prefs != nil && h.svc.Prefs.DarkMode() {
		return "☾ Gelap"
	}
	return "☀ Terang"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lastResultMsg:
		h.last = msg
		if msg.Corrupt {
			h.notice = "Hasil tersimpan rusak dan telah dihapus."
		}
		return h, nil

	case themeToggledMsg:
		if msg.Err != nil {
			h.notice = "Gagal menyimpan tema: " + msg.Err.Error()
		} else {
			theme.Apply(msg.Dark)
			h.notice = ""
		}
		h.menu.Items[itemTheme].Label = themeLabel(h.svc)
		return h, nil

	case screen.NoticeMsg:
		h.notice = msg.Text
		return h, h.loadLast()

	case tea.KeyPressMsg:
		h.notice = ""
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+6)
	cw := min(components.ContentWidth(width), components.BannerWidth)

	var sections []string
	if !compact {
		sections = append(sections, components.Banner(width))
	} else {
		sections = append(sections, components.Banner(0))
	}
	sections = append(sections,
		theme.Subtitle.Width(cw).Render("Kenali minat dan bakatmu dengan tes RIASEC"),
		renderLastResult(h.last, cw),
		h.menu.View(min(cw, 30)),
	)
	if h.notice != "" {
		sections = append(sections, theme.Warning.Width(cw).Render(h.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, joinGap(sections, compact)...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderLastResult(last lastResultMsg, cw int) string {
	var text string
	switch {
	case !last.Found:
		text = theme.Hint.Render("Belum ada hasil tes tersimpan")
	case len(last.Dominant) == 0:
		text = theme.Body.Render("Hasil terakhir: tidak ada tipe dominan")
	default:
		names := make([]string, len(last.Dominant))
		for i, c := range last.Dominant {
			names[i] = c.Name()
		}
		text = theme.Body.Render("Hasil terakhir: ") + theme.Selected.Render(strings.Join(names, ", "))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

func joinGap(sections []string, compact bool) []string {
	if compact {
		return sections
	}
	out := make([]string, 0, len(sections)*2)
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}
