package home

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minatgo/minatgo/internal/preference"
	qz "github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/router"
	"github.com/minatgo/minatgo/internal/screen"
	quizscreen "github.com/minatgo/minatgo/internal/screens/quiz"
	"github.com/minatgo/minatgo/internal/store"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

type memKV map[string]string

func (m memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}
func (m memKV) Set(_ context.Context, key, value string) error { m[key] = value; return nil }
func (m memKV) Delete(_ context.Context, key string) error     { delete(m, key); return nil }

func press(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func newHome(t *testing.T, kv memKV) *HomeScreen {
	t.Helper()
	prefs := preference.NewService(preference.NewMemoryStore())
	if err := prefs.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	return New(screen.Services{Archive: qz.NewArchive(kv), Prefs: prefs})
}

func TestHome_NoSavedResult(t *testing.T) {
	h := newHome(t, memKV{})
	h.Update(h.Init()())
	if h.last.Found {
		t.Fatal("expected no saved result")
	}
	if !strings.Contains(h.View(100, 40), "Belum ada hasil") {
		t.Error("empty state should be shown")
	}
}

func TestHome_ShowsLastDominant(t *testing.T) {
	pairs := riasec.PairMap{{A: riasec.Artistic, B: riasec.Conventional}}
	data, err := qz.NewSnapshot(riasec.Answers{0: riasec.ChoiceA}, pairs, false).Encode()
	if err != nil {
		t.Fatal(err)
	}
	h := newHome(t, memKV{qz.SnapshotKey: string(data)})
	h.Update(h.Init()())

	if !h.last.Found || len(h.last.Dominant) != 1 || h.last.Dominant[0] != riasec.Artistic {
		t.Fatalf("last = %+v", h.last)
	}
	if !strings.Contains(h.View(100, 40), riasec.Artistic.Name()) {
		t.Error("dominant category should be shown")
	}
}

func TestHome_CorruptSnapshotIsClearedAndReported(t *testing.T) {
	kv := memKV{qz.SnapshotKey: "{not json"}
	h := newHome(t, kv)
	h.Update(h.Init()())

	if !h.last.Corrupt {
		t.Fatal("expected corrupt flag")
	}
	if _, ok := kv[qz.SnapshotKey]; ok {
		t.Error("corrupt snapshot should be removed")
	}
	if h.notice == "" {
		t.Error("expected a notice")
	}
}

func TestHome_StartPushesQuiz(t *testing.T) {
	h := newHome(t, memKV{})
	_, cmd := h.Update(press("1"))
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("pushed %T, want quiz screen", msg.Screen)
	}
}

func TestHome_ToggleTheme(t *testing.T) {
	h := newHome(t, memKV{})
	t.Cleanup(func() { theme.Apply(false) })

	_, cmd := h.Update(press("5"))
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	msg := cmd()
	if theme.IsDark() {
		t.Fatal("the command must not touch the palette")
	}
	h.Update(msg)

	if !h.svc.Prefs.DarkMode() {
		t.Error("dark mode should be on")
	}
	if !theme.IsDark() {
		t.Error("palette should follow the preference")
	}
	if got := h.menu.Items[itemTheme].Label; got != "Mode Terang" {
		t.Errorf("theme label = %q", got)
	}
	if !strings.Contains(h.Status(), "Gelap") {
		t.Errorf("status = %q", h.Status())
	}
}

func TestHome_ToggleCommandRunsBesideView(t *testing.T) {
	h := newHome(t, memKV{})
	t.Cleanup(func() { theme.Apply(false) })

	msgs := make(chan tea.Msg, 20)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			msgs <- h.toggleTheme()()
		}
	}()
	for i := 0; i < 20; i++ {
		h.View(80, 24)
	}
	wg.Wait()
	close(msgs)

	for msg := range msgs {
		h.Update(msg)
	}
	if theme.IsDark() != h.svc.Prefs.DarkMode() {
		t.Errorf("palette dark = %v, preference dark = %v", theme.IsDark(), h.svc.Prefs.DarkMode())
	}
}

func TestHome_ToggleFailureKeepsPalette(t *testing.T) {
	mem := preference.NewMemoryStore()
	prefs := preference.NewService(mem)
	if err := prefs.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	mem.Err = errors.New("disk full")
	h := New(screen.Services{Archive: qz.NewArchive(memKV{}), Prefs: prefs})
	t.Cleanup(func() { theme.Apply(false) })

	_, cmd := h.Update(press("5"))
	h.Update(cmd())

	if theme.IsDark() {
		t.Error("palette should stay light when saving fails")
	}
	if !strings.Contains(h.notice, "Gagal menyimpan tema") {
		t.Errorf("notice = %q", h.notice)
	}
}
