package riasec

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Category is one of the six RIASEC interest codes.
type Category string

const (
	Realistic     Category = "R"
	Investigative Category = "I"
	Artistic      Category = "A"
	Social        Category = "S"
	Enterprising  Category = "E"
	Conventional  Category = "C"
)

// All lists the categories in canonical order. Every ordered output of this
// package follows it.
var All = []Category{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

// ErrMalformedPair is returned when a raw category-pair token does not
// resolve to exactly two known categories.
var ErrMalformedPair = errors.New("malformed category pair")

// Valid reports whether c belongs to the six-letter vocabulary.
func (c Category) Valid() bool {
	switch c {
	case Realistic, Investigative, Artistic, Social, Enterprising, Conventional:
		return true
	}
	return false
}

// Name returns the English name of the category.
func (c Category) Name() string {
	switch c {
	case Realistic:
		return "Realistic"
	case Investigative:
		return "Investigative"
	case Artistic:
		return "Artistic"
	case Social:
		return "Social"
	case Enterprising:
		return "Enterprising"
	case Conventional:
		return "Conventional"
	}
	return string(c)
}

// Traits returns the short Indonesian trait description shown next to the name.
func (c Category) Traits() string {
	switch c {
	case Realistic:
		return "Praktis / Teknis"
	case Investigative:
		return "Analitis / Riset"
	case Artistic:
		return "Kreatif / Ekspresif"
	case Social:
		return "Sosial / Membantu"
	case Enterprising:
		return "Memimpin / Bisnis"
	case Conventional:
		return "Terstruktur / Administratif"
	}
	return ""
}

// Label is the display label, e.g. "Realistic (Praktis / Teknis)".
func (c Category) Label() string {
	if !c.Valid() {
		return string(c)
	}
	return fmt.Sprintf("%s (%s)", c.Name(), c.Traits())
}

// Choice is the option a user picked for a question.
type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
)

// Valid reports whether ch is A or B.
func (ch Choice) Valid() bool {
	return ch == ChoiceA || ch == ChoiceB
}

// Pair maps each option of a question to the category it represents.
type Pair struct {
	A Category `json:"A"`
	B Category `json:"B"`
}

// For returns the category represented by the given choice. The second
// result is false for a choice other than A or B.
func (p Pair) For(ch Choice) (Category, bool) {
	switch ch {
	case ChoiceA:
		return p.A, true
	case ChoiceB:
		return p.B, true
	}
	return "", false
}

// String renders the pair in the "R-I" token form used by question records.
func (p Pair) String() string {
	return string(p.A) + "-" + string(p.B)
}

// PairMap is the per-question category-pair lookup, index-aligned with the
// question sequence.
type PairMap []Pair

// ParsePair normalizes a free-text type token such as "R-I", "r / i" or
// " RI " into a Pair. Everything but letters is stripped; exactly two letters
// must remain and both must be known categories.
func ParsePair(raw string) (Pair, error) {
	var letters []rune
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
	}
	if len(letters) != 2 {
		return Pair{}, fmt.Errorf("%w: %q has %d category letters, want 2", ErrMalformedPair, raw, len(letters))
	}
	p := Pair{A: Category(letters[0]), B: Category(letters[1])}
	for _, c := range []Category{p.A, p.B} {
		if !c.Valid() {
			return Pair{}, fmt.Errorf("%w: %q contains unknown category %q", ErrMalformedPair, raw, c)
		}
	}
	return p, nil
}
