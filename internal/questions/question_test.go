package questions

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minatgo/minatgo/internal/riasec"
)

type failingSource struct{ err error }

func (f failingSource) ListQuestions(context.Context) ([]Record, error) { return nil, f.err }

func TestDefaultBankLayout(t *testing.T) {
	b, err := Load(context.Background(), NewStaticSource())
	require.NoError(t, err)
	require.Equal(t, 30, b.Len())
	require.Len(t, b.Pairs, 30)
	assert.Empty(t, b.Rejected)

	for i, p := range b.Pairs {
		want := riasec.All[i/5]
		assert.Equal(t, want, p.A, "question %d option A", i)
		assert.NotEqual(t, p.A, p.B, "question %d maps both options to one category", i)
	}

	answers := riasec.Answers{}
	for i := range b.Questions {
		answers[i] = riasec.ChoiceA
	}
	assert.Equal(t, riasec.All, riasec.Evaluate(answers, b.Pairs).Dominant)
}

func TestLoad_RejectsMalformedRecords(t *testing.T) {
	src := &StaticSource{Records: []Record{
		{ID: 1, Text: "q1", OptionA: "a", OptionB: "b", Type: "R-I"},
		{ID: 2, Text: "q2", OptionA: "a", OptionB: "b", Type: "R"},
		{ID: 3, Text: "q3", OptionA: "a", OptionB: "b", Type: "X-Y"},
		{ID: 4, Text: "  ", OptionA: "a", OptionB: "b", Type: "S-E"},
		{ID: 5, Text: "q5", OptionA: "a", OptionB: "b", Type: "c / a"},
	}}

	b, err := Load(context.Background(), src)
	require.NoError(t, err)

	require.Equal(t, 2, b.Len())
	assert.Equal(t, "q1", b.Questions[0].Text)
	assert.Equal(t, riasec.Pair{A: riasec.Conventional, B: riasec.Artistic}, b.Pairs[1])
	require.Len(t, b.Rejected, 3)
	assert.True(t, errors.Is(b.Rejected[0].Err, riasec.ErrMalformedPair))
	assert.Equal(t, int64(4), b.Rejected[2].Record.ID)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), failingSource{err: errors.New("offline")})
	assert.ErrorContains(t, err, "offline")

	_, err = Load(context.Background(), &StaticSource{})
	assert.ErrorIs(t, err, ErrEmptyBank)

	_, err = Load(context.Background(), &StaticSource{Records: []Record{{Text: "q", OptionA: "a", OptionB: "b", Type: "??"}}})
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestFallbackSource(t *testing.T) {
	src := FallbackSource{Primary: &StaticSource{}, Secondary: NewStaticSource()}
	recs, err := src.ListQuestions(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 30)

	src = FallbackSource{Primary: failingSource{err: errors.New("down")}, Secondary: NewStaticSource()}
	_, err = src.ListQuestions(context.Background())
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, DefaultRecords()[:3]))
	assert.Contains(t, buf.String(), "version: v1.0.0")

	f, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, f.Questions, 3)
	assert.Equal(t, "R-I", f.Questions[0].Type)
}

func TestDecode_RejectsOtherMajorVersion(t *testing.T) {
	in := "version: v2.1.0\nquestions: []\n"
	_, err := Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Decode(strings.NewReader("version: latest\nquestions: []\n"))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}
