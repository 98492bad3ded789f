package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/minatgo/minatgo/internal/riasec"
)

// SnapshotKey is the fixed storage key for the last submitted attempt.
const SnapshotKey = "riasec_test_results"

// ErrCorruptSnapshot is returned when a stored snapshot cannot be decoded.
// Callers clear the key and restart the flow.
var ErrCorruptSnapshot = errors.New("corrupt result snapshot")

// Snapshot is the persisted record of a submitted attempt.
type Snapshot struct {
	Answers      map[string]riasec.Choice `json:"answers"`
	QuestionsMap riasec.PairMap           `json:"questionsMap"`
	Results      SnapshotResults          `json:"results"`
	DarkMode     bool                     `json:"darkMode"`
}

// SnapshotResults holds the counts at submission time.
type SnapshotResults struct {
	Counts riasec.Tally `json:"counts"`
}

// NewSnapshot captures answers, pair map and counts.
func NewSnapshot(answers riasec.Answers, pairs riasec.PairMap, darkMode bool) *Snapshot {
	enc := make(map[string]riasec.Choice, len(answers))
	for i, ch := range answers {
		enc[strconv.Itoa(i)] = ch
	}
	cp := make(riasec.PairMap, len(pairs))
	copy(cp, pairs)
	return &Snapshot{
		Answers:      enc,
		QuestionsMap: cp,
		Results:      SnapshotResults{Counts: riasec.Score(answers, pairs)},
		DarkMode:     darkMode,
	}
}

// AnswerSet converts the stored answers back into an answer store.
func (s *Snapshot) AnswerSet() (riasec.Answers, error) {
	out := make(riasec.Answers, len(s.Answers))
	for k, ch := range s.Answers {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: answer key %q", ErrCorruptSnapshot, k)
		}
		if !ch.Valid() {
			return nil, fmt.Errorf("%w: answer %d has choice %q", ErrCorruptSnapshot, i, ch)
		}
		out[i] = ch
	}
	return out, nil
}

// Result recomputes the derived values from the stored answers and pair map.
func (s *Snapshot) Result() (riasec.Result, error) {
	answers, err := s.AnswerSet()
	if err != nil {
		return riasec.Result{}, err
	}
	return riasec.Evaluate(answers, s.QuestionsMap), nil
}

// Encode serializes the snapshot.
func (s *Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot parses a stored snapshot. Any structural problem is
// reported as ErrCorruptSnapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if s.Answers == nil || s.QuestionsMap == nil {
		return nil, fmt.Errorf("%w: missing answers or questionsMap", ErrCorruptSnapshot)
	}
	for i, p := range s.QuestionsMap {
		if !p.A.Valid() || !p.B.Valid() {
			return nil, fmt.Errorf("%w: pair %d is %q", ErrCorruptSnapshot, i, p.String())
		}
	}
	if _, err := s.AnswerSet(); err != nil {
		return nil, err
	}
	return &s, nil
}
