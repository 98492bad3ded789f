package quiz

import (
	"errors"
	"fmt"

	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/riasec"
)

var (
	// ErrIncomplete is returned when results are requested before every
	// question has been answered.
	ErrIncomplete = errors.New("not all questions answered")

	// ErrAlreadyAnswered is returned when an answered question is answered again.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrOutOfRange is returned for an index outside the question bank.
	ErrOutOfRange = errors.New("question index out of range")
)

// Cover is the cursor position of the cover card shown before question 0.
const Cover = -1

// Stage is what the session is currently showing.
type Stage int

const (
	StageCover Stage = iota
	StageQuestion
	StageQuote
	StageFinish
)

// Session is one quiz attempt. It owns the answer store and the navigation
// cursor; derived values are recomputed from the store on every call.
type Session struct {
	bank    *questions.Bank
	answers riasec.Answers
	cursor  int
	quote   bool
}

// NewSession starts an attempt over the given bank at the cover card.
func NewSession(bank *questions.Bank) *Session {
	return &Session{
		bank:    bank,
		answers: riasec.Answers{},
		cursor:  Cover,
	}
}

// Total is the number of questions in the bank.
func (s *Session) Total() int { return s.bank.Len() }

// Cursor returns the current question index, Cover before the first
// question and Total() on the finish card.
func (s *Session) Cursor() int { return s.cursor }

// Stage reports what the cursor currently points at.
func (s *Session) Stage() Stage {
	switch {
	case s.quote:
		return StageQuote
	case s.cursor == Cover:
		return StageCover
	case s.cursor >= s.Total():
		return StageFinish
	default:
		return StageQuestion
	}
}

// Current returns the question under the cursor.
func (s *Session) Current() (questions.Question, bool) {
	if s.Stage() != StageQuestion {
		return questions.Question{}, false
	}
	return s.bank.Questions[s.cursor], true
}

// Start moves from the cover card to the first question.
func (s *Session) Start() {
	if s.cursor == Cover && s.Total() > 0 {
		s.cursor = 0
	}
}

// Answer records the choice for question index. The first answer for an
// index is kept; answering it again returns ErrAlreadyAnswered. On success
// the cursor advances like Next.
func (s *Session) Answer(index int, choice riasec.Choice) error {
	if index < 0 || index >= s.Total() {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if !choice.Valid() {
		return fmt.Errorf("invalid choice %q", choice)
	}
	if _, ok := s.answers[index]; ok {
		return fmt.Errorf("%w: %d", ErrAlreadyAnswered, index)
	}
	s.answers[index] = choice
	if index == s.cursor {
		s.advance()
	}
	return nil
}

// Chosen returns the recorded choice for index, if any.
func (s *Session) Chosen(index int) (riasec.Choice, bool) {
	ch, ok := s.answers[index]
	return ch, ok
}

// CanNext reports whether Next would move forward: the current question
// must be answered, or a quote must be showing.
func (s *Session) CanNext() bool {
	switch s.Stage() {
	case StageQuote:
		return true
	case StageQuestion:
		_, ok := s.answers[s.cursor]
		return ok
	}
	return false
}

// Next advances past an answered question or a quote interlude.
func (s *Session) Next() bool {
	if !s.CanNext() {
		return false
	}
	if s.quote {
		s.quote = false
		s.cursor++
		return true
	}
	s.advance()
	return true
}

// Prev steps back one card. From a quote it returns to the question that
// preceded it.
func (s *Session) Prev() bool {
	if s.quote {
		s.quote = false
		return true
	}
	if s.cursor <= 0 {
		return false
	}
	s.cursor--
	return true
}

func (s *Session) advance() {
	next := s.cursor + 1
	if QuoteAfter(next) && next < s.Total() {
		s.quote = true
		return
	}
	if next <= s.Total() {
		s.cursor = next
	}
}

// Progress is the number of answered questions.
func (s *Session) Progress() int { return len(s.answers) }

// Remaining is the number of unanswered questions, never negative.
func (s *Session) Remaining() int {
	if r := s.Total() - len(s.answers); r > 0 {
		return r
	}
	return 0
}

// Complete reports whether every question has an answer.
func (s *Session) Complete() bool {
	return s.Total() > 0 && len(s.answers) >= s.Total()
}

// Answers returns a copy of the answer store.
func (s *Session) Answers() riasec.Answers { return s.answers.Clone() }

// Result derives counts, percentages and the dominant set from the current
// answer store.
func (s *Session) Result() riasec.Result {
	return riasec.Evaluate(s.answers, s.bank.Pairs)
}

// Submit returns the snapshot to persist. Every question must be answered.
func (s *Session) Submit(darkMode bool) (*Snapshot, error) {
	if !s.Complete() {
		return nil, fmt.Errorf("%w (%d/%d)", ErrIncomplete, s.Progress(), s.Total())
	}
	return NewSnapshot(s.answers, s.bank.Pairs, darkMode), nil
}

// Retake clears the answer store and returns to the cover card.
func (s *Session) Retake() {
	s.answers = riasec.Answers{}
	s.cursor = Cover
	s.quote = false
}
