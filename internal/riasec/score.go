package riasec

import "math"

// Answers is the answer store: question index to chosen option. Indices are
// sparse; only answered questions are present.
type Answers map[int]Choice

// Clone returns an independent copy of the answers.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Tally counts chosen options per category. A Tally produced by this package
// always carries all six keys.
type Tally map[Category]int

// NewTally returns a tally with every category at zero.
func NewTally() Tally {
	t := make(Tally, len(All))
	for _, c := range All {
		t[c] = 0
	}
	return t
}

// Total is the sum over the six categories.
func (t Tally) Total() int {
	n := 0
	for _, c := range All {
		n += t[c]
	}
	return n
}

// Max returns the highest count across the six categories.
func (t Tally) Max() int {
	best := 0
	for i, c := range All {
		if i == 0 || t[c] > best {
			best = t[c]
		}
	}
	return best
}

// Score folds the answers through the pair map into a fresh Tally.
//
// Answers whose index has no pair entry are skipped, as are entries that
// resolve to a category outside the vocabulary. Neither is an error: they
// reflect answers recorded before the map was available or malformed data.
// Inputs are never modified.
func Score(answers Answers, pairs PairMap) Tally {
	t := NewTally()
	for idx, choice := range answers {
		if idx < 0 || idx >= len(pairs) {
			continue
		}
		c, ok := pairs[idx].For(choice)
		if !ok || !c.Valid() {
			continue
		}
		t[c]++
	}
	return t
}

// Percentages returns each category's share of the answered questions,
// rounded half-up to a whole percent. The denominator is max(answered, 1),
// so zero answered questions yields all zeros. The values are not forced to
// sum to 100.
func Percentages(t Tally, answered int) map[Category]int {
	den := answered
	if den < 1 {
		den = 1
	}
	out := make(map[Category]int, len(All))
	for _, c := range All {
		out[c] = int(math.Floor(float64(t[c])/float64(den)*100 + 0.5))
	}
	return out
}

// Dominant returns every category sharing the maximum count, in canonical
// order. An all-zero tally has no dominant category and yields an empty
// (non-nil) slice.
func Dominant(t Tally) []Category {
	out := []Category{}
	best := t.Max()
	if best <= 0 {
		return out
	}
	for _, c := range All {
		if t[c] == best {
			out = append(out, c)
		}
	}
	return out
}

// Result bundles the values derived from one answer store.
type Result struct {
	Counts   Tally
	Percent  map[Category]int
	Dominant []Category
	Answered int
}

// Evaluate runs the scorer, percentage deriver and dominance resolver over
// the answers. The answered count is the size of the answer store.
func Evaluate(answers Answers, pairs PairMap) Result {
	t := Score(answers, pairs)
	return Result{
		Counts:   t,
		Percent:  Percentages(t, len(answers)),
		Dominant: Dominant(t),
		Answered: len(answers),
	}
}

// IsDominant reports whether c is among the result's dominant categories.
func (r Result) IsDominant(c Category) bool {
	for _, d := range r.Dominant {
		if d == c {
			return true
		}
	}
	return false
}
