package screen

import (
	"context"

	"github.com/minatgo/minatgo/internal/event"
	"github.com/minatgo/minatgo/internal/insight"
	"github.com/minatgo/minatgo/internal/preference"
	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/store"
)

// ContactSaver stores contact form messages.
type ContactSaver interface {
	Save(ctx context.Context, msg store.ContactMessage) (int64, error)
}

// Services are the collaborators screens call into. Insight and Recorder
// may be nil.
type Services struct {
	Questions questions.Source
	Archive   *quiz.Archive
	Prefs     *preference.Service
	Insight   *insight.Service
	Recorder  *event.Recorder
	Contacts  ContactSaver
	// ReportDir is where exported PDFs are written.
	ReportDir string
}

// NoticeMsg asks the active screen to show a one-line message.
type NoticeMsg struct {
	Text string
}
