package questions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minatgo/minatgo/internal/riasec"
)

// ErrEmptyBank is returned when a source yields no usable questions.
var ErrEmptyBank = errors.New("question bank is empty")

// Record is a raw question row as stored in the question table.
// Type holds the free-text category-pair token, e.g. "R-I".
type Record struct {
	ID      int64  `json:"id" yaml:"id,omitempty"`
	Text    string `json:"text" yaml:"text" validate:"required,max=500"`
	OptionA string `json:"optiona" yaml:"optiona" validate:"required,max=300"`
	OptionB string `json:"optionb" yaml:"optionb" validate:"required,max=300"`
	Type    string `json:"type" yaml:"type" validate:"required,max=16,riasecpair"`
}

// Question is the presentation view of a record. It is immutable once
// loaded and identified by its index in the bank.
type Question struct {
	Text    string `json:"text"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
}

// Option returns the label for the given choice.
func (q Question) Option(ch riasec.Choice) string {
	if ch == riasec.ChoiceB {
		return q.OptionB
	}
	return q.OptionA
}

// Source supplies question records ordered by a stable key.
type Source interface {
	ListQuestions(ctx context.Context) ([]Record, error)
}

// Rejection describes a record left out of the bank at load time.
type Rejection struct {
	Record Record
	Err    error
}

// Bank is the loaded, validated question sequence and its pair map.
// Questions[i] and Pairs[i] always describe the same question.
type Bank struct {
	Questions []Question
	Pairs     riasec.PairMap
	Rejected  []Rejection
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Questions)
}

// Load fetches records from src and validates each category-pair token.
// Malformed records are excluded and listed in Bank.Rejected so scoring only
// ever sees the six known categories. A source failure or a bank with no
// usable question is an error.
func Load(ctx context.Context, src Source) (*Bank, error) {
	recs, err := src.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	b := FromRecords(recs)
	if b.Len() == 0 {
		if len(b.Rejected) > 0 {
			return b, fmt.Errorf("%w: all %d records rejected", ErrEmptyBank, len(b.Rejected))
		}
		return b, ErrEmptyBank
	}
	return b, nil
}

// FromRecords builds a bank from records already in memory.
func FromRecords(recs []Record) *Bank {
	b := &Bank{
		Questions: make([]Question, 0, len(recs)),
		Pairs:     make(riasec.PairMap, 0, len(recs)),
	}
	for _, r := range recs {
		if err := CheckRecord(r); err != nil {
			b.Rejected = append(b.Rejected, Rejection{Record: r, Err: err})
			continue
		}
		pair, _ := riasec.ParsePair(r.Type)
		b.Questions = append(b.Questions, Question{Text: r.Text, OptionA: r.OptionA, OptionB: r.OptionB})
		b.Pairs = append(b.Pairs, pair)
	}
	return b
}

// CheckRecord verifies that a record has text, both options and a
// well-formed category pair.
func CheckRecord(r Record) error {
	switch {
	case strings.TrimSpace(r.Text) == "":
		return errors.New("question text is required")
	case strings.TrimSpace(r.OptionA) == "" || strings.TrimSpace(r.OptionB) == "":
		return errors.New("both options are required")
	}
	if _, err := riasec.ParsePair(r.Type); err != nil {
		return err
	}
	return nil
}
