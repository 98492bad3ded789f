package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/store"
)

// QuizCompletedKey is the routing key of completion events.
const QuizCompletedKey = "quiz.completed"

// QuizCompleted is the published payload.
type QuizCompleted struct {
	AttemptID string         `json:"attempt_id"`
	Sequence  int64          `json:"sequence"`
	Origin    string         `json:"origin"`
	Answered  int            `json:"answered"`
	Total     int            `json:"total"`
	Counts    map[string]int `json:"counts"`
	Percent   map[string]int `json:"percent"`
	Dominant  []string       `json:"dominant"`
}

// Recorder appends completions to the event log and forwards them to a
// Publisher.
type Recorder struct {
	events store.EventRepo
	pub    Publisher
	log    *slog.Logger
}

// NewRecorder builds a recorder. A nil pub publishes nothing; a nil log
// uses slog.Default.
func NewRecorder(events store.EventRepo, pub Publisher, log *slog.Logger) *Recorder {
	if pub == nil {
		pub = Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{events: events, pub: pub, log: log}
}

// QuizCompleted stores res and publishes it. A publish failure is logged
// and does not fail the call; the local record is authoritative.
func (r *Recorder) QuizCompleted(ctx context.Context, origin string, res riasec.Result, total int) (QuizCompleted, error) {
	ev := QuizCompleted{
		AttemptID: uuid.NewString(),
		Origin:    origin,
		Answered:  res.Answered,
		Total:     total,
		Counts:    make(map[string]int, len(riasec.All)),
		Percent:   make(map[string]int, len(riasec.All)),
		Dominant:  make([]string, 0, len(res.Dominant)),
	}
	for _, c := range riasec.All {
		ev.Counts[string(c)] = res.Counts[c]
		ev.Percent[string(c)] = res.Percent[c]
	}
	for _, c := range res.Dominant {
		ev.Dominant = append(ev.Dominant, string(c))
	}

	seq, err := r.events.AppendQuizCompleted(ctx, store.QuizEventData{
		AttemptID: ev.AttemptID,
		Origin:    origin,
		Answered:  ev.Answered,
		Total:     total,
		Counts:    ev.Counts,
		Dominant:  ev.Dominant,
	})
	if err != nil {
		return ev, fmt.Errorf("record quiz completion: %w", err)
	}
	ev.Sequence = seq

	if err := r.pub.Publish(ctx, QuizCompletedKey, ev); err != nil {
		r.log.WarnContext(ctx, "publish quiz completion failed",
			slog.String("attempt_id", ev.AttemptID), slog.Any("error", err))
	}
	return ev, nil
}
