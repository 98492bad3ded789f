package riasec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedLayout returns the 30-entry pair map where option A of questions
// 0-4 is R, 5-9 I, 10-14 A, 15-19 S, 20-24 E and 25-29 C.
func fixedLayout() PairMap {
	bs := []Category{Investigative, Investigative, Conventional, Conventional, Investigative}
	var pm PairMap
	for _, a := range All {
		for i := 0; i < 5; i++ {
			b := bs[i]
			if b == a {
				b = Social
			}
			pm = append(pm, Pair{A: a, B: b})
		}
	}
	return pm
}

func allZero() Tally {
	return Tally{Realistic: 0, Investigative: 0, Artistic: 0, Social: 0, Enterprising: 0, Conventional: 0}
}

func TestScore_EmptyAnswers(t *testing.T) {
	assert.Equal(t, allZero(), Score(Answers{}, fixedLayout()))
	assert.Equal(t, allZero(), Score(nil, nil))
}

func TestScore_SkipsMissingMapEntries(t *testing.T) {
	pairs := PairMap{{A: Realistic, B: Investigative}}
	answers := Answers{0: ChoiceA, 1: ChoiceB, 7: ChoiceA, -1: ChoiceA}

	got := Score(answers, pairs)

	assert.Equal(t, 1, got[Realistic])
	assert.Equal(t, 1, got.Total())
	assert.LessOrEqual(t, got.Total(), len(answers))
}

func TestScore_SkipsOutOfVocabulary(t *testing.T) {
	pairs := PairMap{
		{A: "X", B: "Y"},
		{A: Artistic, B: Social},
	}
	got := Score(Answers{0: ChoiceA, 1: ChoiceB}, pairs)

	assert.Equal(t, 1, got[Social])
	assert.Equal(t, 1, got.Total())
	_, hasX := got["X"]
	assert.False(t, hasX)
}

func TestScore_SkipsUnknownChoice(t *testing.T) {
	pairs := PairMap{{A: Realistic, B: Investigative}}
	got := Score(Answers{0: "C"}, pairs)
	assert.Equal(t, 0, got.Total())
}

func TestScore_TotalEqualsAnswersWhenAllResolve(t *testing.T) {
	pairs := fixedLayout()
	answers := Answers{}
	for i := range pairs {
		if i%3 == 0 {
			answers[i] = ChoiceB
		} else {
			answers[i] = ChoiceA
		}
	}
	assert.Equal(t, len(answers), Score(answers, pairs).Total())
}

func TestScore_PureAndDeterministic(t *testing.T) {
	pairs := fixedLayout()
	answers := Answers{0: ChoiceA, 3: ChoiceB, 12: ChoiceA}
	before := answers.Clone()
	pairsBefore := append(PairMap(nil), pairs...)

	first := Score(answers, pairs)
	second := Score(answers, pairs)

	assert.Equal(t, first, second)
	first[Realistic] = 99
	assert.NotEqual(t, first, second, "each call must return a fresh tally")
	assert.Equal(t, before, answers)
	assert.Equal(t, pairsBefore, pairs)
}

func TestPercentages_ZeroAnswered(t *testing.T) {
	got := Percentages(NewTally(), 0)
	for _, c := range All {
		assert.Equal(t, 0, got[c], "category %s", c)
	}
}

func TestPercentages_Rounding(t *testing.T) {
	tally := NewTally()
	tally[Realistic] = 1
	tally[Investigative] = 2
	got := Percentages(tally, 3)
	assert.Equal(t, 33, got[Realistic])
	assert.Equal(t, 67, got[Investigative])

	// 1/8 = 12.5% rounds up.
	tally = NewTally()
	tally[Artistic] = 1
	assert.Equal(t, 13, Percentages(tally, 8)[Artistic])
}

func TestDominant(t *testing.T) {
	tests := []struct {
		name  string
		tally Tally
		want  []Category
	}{
		{"all zero", allZero(), []Category{}},
		{"single", Tally{Realistic: 0, Investigative: 0, Artistic: 4, Social: 1, Enterprising: 0, Conventional: 0}, []Category{Artistic}},
		{"tie R I", Tally{Realistic: 3, Investigative: 3, Artistic: 1, Social: 0, Enterprising: 0, Conventional: 0}, []Category{Realistic, Investigative}},
		{"tie canonical order", Tally{Conventional: 2, Social: 2, Realistic: 2, Investigative: 0, Artistic: 0, Enterprising: 0}, []Category{Realistic, Social, Conventional}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dominant(tt.tally))
		})
	}
}

func TestEvaluate_AlwaysAIsSixWayTie(t *testing.T) {
	pairs := fixedLayout()
	require.Len(t, pairs, 30)
	answers := Answers{}
	for i := range pairs {
		answers[i] = ChoiceA
	}

	res := Evaluate(answers, pairs)

	for _, c := range All {
		assert.Equal(t, 5, res.Counts[c], "category %s", c)
	}
	assert.Equal(t, All, res.Dominant)
	assert.Len(t, RecommendAll(res.Dominant), 6)
}

func TestEvaluate_PartialAnswers(t *testing.T) {
	pairs := fixedLayout()
	answers := Answers{}
	for i := 0; i < 5; i++ {
		answers[i] = ChoiceA
	}

	res := Evaluate(answers, pairs)

	assert.Equal(t, 5, res.Counts[Realistic])
	assert.Equal(t, 5, res.Counts.Total())
	assert.Equal(t, []Category{Realistic}, res.Dominant)
	assert.Equal(t, 100, res.Percent[Realistic])
	for _, c := range All[1:] {
		assert.Equal(t, 0, res.Percent[c], "category %s", c)
	}
}

func TestEvaluate_RetakeClearsResult(t *testing.T) {
	pairs := fixedLayout()
	answers := Answers{0: ChoiceA, 1: ChoiceA}
	require.NotEmpty(t, Evaluate(answers, pairs).Dominant)

	answers = Answers{}
	res := Evaluate(answers, pairs)
	assert.Equal(t, allZero(), res.Counts)
	assert.Empty(t, res.Dominant)
}
