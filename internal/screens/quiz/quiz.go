// Package quiz is the screen that walks the user through the question bank.
package quiz

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/minatgo/minatgo/internal/questions"
	qz "github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/router"
	"github.com/minatgo/minatgo/internal/screen"
	"github.com/minatgo/minatgo/internal/ui/components"
	"github.com/minatgo/minatgo/internal/ui/layout"
)

// QuizScreen implements screen.Screen for one test attempt.
type QuizScreen struct {
	svc        screen.Services
	result     func() screen.Screen
	session    *qz.Session
	choice     components.BinaryChoice
	loading    bool
	loadErr    error
	rejected   int
	submitting bool
	errMsg     string
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
)

// New creates the quiz screen. result builds the screen shown after a
// successful submission.
func New(svc screen.Services, result func() screen.Screen) *QuizScreen {
	return &QuizScreen{svc: svc, result: result, loading: true}
}

func (q *QuizScreen) Init() tea.Cmd {
	q.loading = true
	q.loadErr = nil
	src := q.svc.Questions
	return func() tea.Msg {
		bank, err := questions.Load(context.Background(), src)
		return bankLoadedMsg{Bank: bank, Err: err}
	}
}

func (q *QuizScreen) Title() string {
	return "Tes Minat RIASEC"
}

func (q *QuizScreen) Status() string {
	if q.session == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", q.session.Progress(), q.session.Total())
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.loadErr != nil {
		return []layout.KeyHint{{Key: "r", Description: "Muat ulang"}, {Key: "Esc", Description: "Kembali"}}
	}
	if q.session == nil {
		return nil
	}
	switch q.session.Stage() {
	case qz.StageCover:
		return []layout.KeyHint{{Key: "Enter", Description: "Mulai"}, {Key: "Esc", Description: "Kembali"}}
	case qz.StageQuote:
		return []layout.KeyHint{{Key: "Enter", Description: "Lanjut"}, {Key: "←", Description: "Sebelumnya"}}
	case qz.StageFinish:
		return []layout.KeyHint{{Key: "Enter", Description: "Lihat hasil"}, {Key: "←", Description: "Sebelumnya"}}
	}
	return []layout.KeyHint{
		{Key: "A/B", Description: "Pilih"},
		{Key: "←→", Description: "Navigasi"},
		{Key: "Esc", Description: "Keluar"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		return q.handleLoaded(msg)

	case submittedMsg:
		q.submitting = false
		if msg.Err != nil {
			q.errMsg = "Gagal menyimpan hasil: " + msg.Err.Error()
			return q, nil
		}
		next := q.result()
		if msg.RecordErr != nil {
			// The result is saved; only the history entry is missing.
			next.Update(screen.NoticeMsg{Text: "Hasil tersimpan, tetapi riwayat tes gagal dicatat: " + msg.RecordErr.Error()})
		}
		return q, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case components.ChoiceMadeMsg:
		if q.session == nil {
			return q, nil
		}
		if err := q.session.Answer(msg.Index, msg.Choice); err != nil {
			q.errMsg = err.Error()
			return q, nil
		}
		q.errMsg = ""
		q.syncChoice()
		return q, nil

	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleLoaded(msg bankLoadedMsg) (screen.Screen, tea.Cmd) {
	q.loading = false
	if msg.Err != nil {
		q.loadErr = msg.Err
		return q, nil
	}
	q.rejected = len(msg.Bank.Rejected)
	q.session = qz.NewSession(msg.Bank)
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if q.loadErr != nil {
		if msg.String() == "r" {
			return q, q.Init()
		}
		return q, nil
	}
	if q.session == nil || q.submitting {
		return q, nil
	}

	key := msg.String()
	switch q.session.Stage() {
	case qz.StageCover:
		if key == "enter" || key == "space" {
			q.session.Start()
			q.syncChoice()
		}
		return q, nil

	case qz.StageQuote:
		switch key {
		case "enter", "space", "right", "l":
			q.session.Next()
		case "left", "h", "backspace":
			q.session.Prev()
		}
		q.syncChoice()
		return q, nil

	case qz.StageFinish:
		switch key {
		case "enter":
			return q, q.submit()
		case "left", "h", "backspace":
			q.session.Prev()
			q.syncChoice()
		}
		return q, nil
	}

	switch key {
	case "left", "h", "backspace":
		q.session.Prev()
		q.syncChoice()
		return q, nil
	case "right", "l", "tab":
		if q.session.Next() {
			q.syncChoice()
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)
	return q, cmd
}

// syncChoice rebuilds the selector for the card under the cursor.
func (q *QuizScreen) syncChoice() {
	cur, ok := q.session.Current()
	if !ok {
		return
	}
	i := q.session.Cursor()
	chosen, _ := q.session.Chosen(i)
	q.choice = components.NewBinaryChoice(i, cur.Text, cur.OptionA, cur.OptionB, chosen)
}

func (q *QuizScreen) submit() tea.Cmd {
	dark := false
	if q.svc.Prefs != nil {
		dark = q.svc.Prefs.DarkMode()
	}
	snap, err := q.session.Submit(dark)
	if err != nil {
		if errors.Is(err, qz.ErrIncomplete) {
			q.errMsg = fmt.Sprintf("Masih ada %d pertanyaan yang belum dijawab.", q.session.Remaining())
		} else {
			q.errMsg = err.Error()
		}
		return nil
	}
	q.submitting = true

	svc := q.svc
	res := q.session.Result()
	total := q.session.Total()
	return func() tea.Msg {
		ctx := context.Background()
		if err := svc.Archive.Save(ctx, snap); err != nil {
			return submittedMsg{Err: err}
		}
		var recordErr error
		if svc.Recorder != nil {
			_, recordErr = svc.Recorder.QuizCompleted(ctx, "tui", res, total)
		}
		return submittedMsg{Snapshot: snap, RecordErr: recordErr}
	}
}
