// Package result shows the last submitted test result.
package result

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/report"
	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/router"
	"github.com/minatgo/minatgo/internal/screen"
	"github.com/minatgo/minatgo/internal/ui/layout"
)

type loadedMsg struct {
	Snapshot *qz.Snapshot
	Err      error
}

type pdfSavedMsg struct {
	Path string
	Err  error
}

type insightMsg struct {
	Text string
	Err  error
}

type retakeFailedMsg struct {
	Err error
}

// ResultScreen renders the stored snapshot.
type ResultScreen struct {
	svc    screen.Services
	retake func() screen.Screen

	loaded bool
	empty  bool
	res    riasec.Result
	rep    report.Report

	offset      int
	notice      string
	insightBusy bool
}

var (
	_ screen.Screen          = (*ResultScreen)(nil)
	_ screen.KeyHintProvider = (*ResultScreen)(nil)
)

// New creates the result screen. retake builds a fresh quiz screen.
func New(svc screen.Services, retake func() screen.Screen) *ResultScreen {
	return &ResultScreen{svc: svc, retake: retake}
}

func (r *ResultScreen) Init() tea.Cmd {
	archive := r.svc.Archive
	return func() tea.Msg {
		snap, err := archive.Load(context.Background())
		return loadedMsg{Snapshot: snap, Err: err}
	}
}

func (r *ResultScreen) Title() string {
	return "Hasil Tes"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Gulir"}}
	if r.loaded && !r.empty {
		hints = append(hints,
			layout.KeyHint{Key: "r", Description: "Ulangi"},
			layout.KeyHint{Key: "p", Description: "Simpan PDF"},
		)
		if r.svc.Insight.Available() {
			hints = append(hints, layout.KeyHint{Key: "i", Description: "Analisis AI"})
		}
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Kembali"})
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return r.handleLoaded(msg)

	case pdfSavedMsg:
		if msg.Err != nil {
			r.notice = "Gagal menyimpan PDF: " + msg.Err.Error()
		} else {
			r.notice = "PDF disimpan ke " + msg.Path
		}
		return r, nil

	case screen.NoticeMsg:
		r.notice = msg.Text
		return r, nil

	case retakeFailedMsg:
		r.notice = "Gagal menghapus hasil lama: " + msg.Err.Error()
		return r, nil

	case insightMsg:
		r.insightBusy = false
		if msg.Err != nil {
			r.notice = "Analisis AI tidak tersedia: " + msg.Err.Error()
		} else {
			r.rep.Insight = msg.Text
			r.notice = ""
		}
		return r, nil

	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *ResultScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	switch {
	case errors.Is(msg.Err, qz.ErrNoSnapshot):
		r.loaded, r.empty = true, true
		return r, nil
	case errors.Is(msg.Err, qz.ErrCorruptSnapshot):
		return r, tea.Sequence(
			func() tea.Msg { return router.PopToRootMsg{} },
			func() tea.Msg {
				return screen.NoticeMsg{Text: "Hasil tersimpan rusak dan telah dihapus. Silakan ulangi tes."}
			},
		)
	case msg.Err != nil:
		r.loaded, r.empty = true, true
		r.notice = "Gagal membaca hasil: " + msg.Err.Error()
		return r, nil
	}

	res, err := msg.Snapshot.Result()
	if err != nil {
		r.loaded, r.empty = true, true
		r.notice = err.Error()
		return r, nil
	}
	r.res = res
	r.rep = report.FromResult(res, len(msg.Snapshot.QuestionsMap))
	r.loaded = true
	return r, nil
}

func (r *ResultScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		r.offset = max(r.offset-1, 0)
		return r, nil
	case "down", "j":
		r.offset++
		return r, nil
	case "pgup":
		r.offset = max(r.offset-10, 0)
		return r, nil
	case "pgdown":
		r.offset += 10
		return r, nil
	}
	if !r.loaded {
		return r, nil
	}

	switch msg.String() {
	case "r":
		return r, r.startRetake()
	case "p":
		if r.empty {
			return r, nil
		}
		r.notice = "Menyimpan PDF..."
		return r, savePDF(r.rep, r.svc.ReportDir)
	case "i":
		if r.empty || r.insightBusy || !r.svc.Insight.Available() {
			return r, nil
		}
		r.insightBusy = true
		r.notice = "Meminta analisis AI..."
		return r, r.explain()
	}
	return r, nil
}

// startRetake forgets the stored result before the new attempt starts, so an
// abandoned retake does not bring the old result back.
func (r *ResultScreen) startRetake() tea.Cmd {
	next := r.retake()
	archive := r.svc.Archive
	return func() tea.Msg {
		if archive != nil {
			if err := archive.Clear(context.Background()); err != nil {
				return retakeFailedMsg{Err: err}
			}
		}
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (r *ResultScreen) explain() tea.Cmd {
	svc := r.svc.Insight
	res := r.res
	return func() tea.Msg {
		in, err := svc.Explain(context.Background(), res)
		if err != nil {
			return insightMsg{Err: err}
		}
		return insightMsg{Text: in.Text()}
	}
}

func savePDF(rep report.Report, dir string) tea.Cmd {
	return func() tea.Msg {
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pdfSavedMsg{Err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("hasil-tes-riasec-%s.pdf", time.Now().Format("20060102-150405")))
		if err := report.SavePDF(path, rep); err != nil {
			return pdfSavedMsg{Err: err}
		}
		return pdfSavedMsg{Path: path}
	}
}
