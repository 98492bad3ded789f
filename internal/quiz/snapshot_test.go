package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minatgo/minatgo/internal/riasec"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	pairs := riasec.PairMap{
		{A: riasec.Realistic, B: riasec.Investigative},
		{A: riasec.Artistic, B: riasec.Social},
	}
	answers := riasec.Answers{0: riasec.ChoiceA, 1: riasec.ChoiceB}

	data, err := NewSnapshot(answers, pairs, true).Encode()
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.True(t, got.DarkMode)
	assert.Equal(t, pairs, got.QuestionsMap)

	res, err := got.Result()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counts[riasec.Realistic])
	assert.Equal(t, 1, res.Counts[riasec.Social])
	assert.Equal(t, []riasec.Category{riasec.Realistic, riasec.Social}, res.Dominant)
}

func TestDecodeSnapshot_Corrupt(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"answers":`,
		"missing map":    `{"answers":{"0":"A"}}`,
		"bad answer key": `{"answers":{"x":"A"},"questionsMap":[{"A":"R","B":"I"}]}`,
		"bad choice":     `{"answers":{"0":"Q"},"questionsMap":[{"A":"R","B":"I"}]}`,
		"bad pair":       `{"answers":{},"questionsMap":[{"A":"R","B":"Z"}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSnapshot([]byte(raw))
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
		})
	}
}
