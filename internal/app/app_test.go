package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minatgo/minatgo/internal/preference"
	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/screen"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	prefs := preference.NewService(preference.NewMemoryStore())
	if err := prefs.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	return Options{
		Services:   screen.Services{Questions: questions.NewStaticSource(), Prefs: prefs},
		SkipSplash: true,
	}
}

func resize(m AppModel) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

func TestView_ShowsHeaderAndHome(t *testing.T) {
	m := resize(newAppModel(testOptions(t)))
	out := m.render()
	for _, want := range []string{"MinatGo", "Beranda", "Mulai Tes"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newAppModel(testOptions(t))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "terlalu kecil") {
		t.Error("expected size warning")
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := resize(newAppModel(testOptions(t)))

	// "3" opens the about screen from the home menu.
	updated, cmd := m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	m = updated.(AppModel)
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)
	if m.router.Depth() != 2 {
		t.Fatalf("expected about screen pushed, depth=%d", m.router.Depth())
	}

	updated, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)
	m.Update(cmd())
	if m.router.Depth() != 1 {
		t.Errorf("expected pop back to home, depth=%d", m.router.Depth())
	}
}

func TestThemeFollowsPreference(t *testing.T) {
	t.Cleanup(func() { theme.Apply(false) })
	opts := testOptions(t)
	m := resize(newAppModel(opts))

	// "5" is the theme entry of the home menu.
	updated, cmd := m.Update(tea.KeyPressMsg{Code: '5', Text: "5"})
	m = updated.(AppModel)
	msg := cmd()
	if theme.IsDark() {
		t.Fatal("palette must only change on the event loop")
	}

	updated, _ = m.Update(msg)
	m = updated.(AppModel)
	if !opts.Services.Prefs.DarkMode() {
		t.Error("preference should be persisted as dark")
	}
	if !theme.IsDark() {
		t.Error("toggle should switch to the dark palette")
	}
	if !strings.Contains(m.render(), "Gelap") {
		t.Error("header status should show the dark theme")
	}
}
