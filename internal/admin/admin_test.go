package admin

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:admin_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewService(s.Questions())
}

func TestNormalize(t *testing.T) {
	rec, err := Normalize(questions.Record{Text: "  Pilih ", OptionA: "a", OptionB: "b", Type: "r / i"})
	require.NoError(t, err)
	assert.Equal(t, "Pilih", rec.Text)
	assert.Equal(t, "R-I", rec.Type)

	tests := map[string]questions.Record{
		"no text":     {OptionA: "a", OptionB: "b", Type: "R-I"},
		"no option b": {Text: "t", OptionA: "a", Type: "R-I"},
		"bad pair":    {Text: "t", OptionA: "a", OptionB: "b", Type: "R-X"},
		"one letter":  {Text: "t", OptionA: "a", OptionB: "b", Type: "R"},
	}
	for name, rec := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Normalize(rec)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestServiceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, questions.Record{ID: 77, Text: "Pilih", OptionA: "Menggambar", OptionB: "Berjualan", Type: "a-e"})
	require.NoError(t, err)
	assert.NotEqual(t, int64(77), created.ID, "client IDs are ignored on create")
	assert.Equal(t, "A-E", created.Type)

	created.OptionB = "Mengajar"
	created.Type = "A-S"
	updated, err := svc.Update(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, "Mengajar", updated.OptionB)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A-S", got.Type)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, questions.Record{Text: "x", OptionA: "a", OptionB: "b", Type: "R-I"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestImportIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	seeded, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	seeded, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded, "seed only fills an empty bank")

	bad := []questions.Record{
		{Text: "a", OptionA: "x", OptionB: "y", Type: "R-I"},
		{Text: "b", OptionA: "x", OptionB: "y", Type: "??"},
	}
	assert.ErrorIs(t, svc.Import(ctx, bad), ErrValidation)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 30, "failed import leaves the bank untouched")

	require.NoError(t, svc.Import(ctx, bad[:1]))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
