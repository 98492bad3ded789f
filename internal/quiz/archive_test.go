package quiz

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/store"
)

type memKV map[string]string

func (m memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, store.ErrNotFound)
	}
	return v, nil
}

func (m memKV) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memKV) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func TestArchive_SaveLoad(t *testing.T) {
	ctx := context.Background()
	kv := memKV{}
	a := NewArchive(kv)

	_, err := a.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	snap := NewSnapshot(riasec.Answers{0: riasec.ChoiceB}, riasec.PairMap{{A: riasec.Realistic, B: riasec.Conventional}}, false)
	require.NoError(t, a.Save(ctx, snap))
	assert.Contains(t, kv, SnapshotKey)

	got, err := a.Load(ctx)
	require.NoError(t, err)
	res, err := got.Result()
	require.NoError(t, err)
	assert.Equal(t, []riasec.Category{riasec.Conventional}, res.Dominant)
}

func TestArchive_CorruptSnapshotIsCleared(t *testing.T) {
	ctx := context.Background()
	kv := memKV{SnapshotKey: "{not json"}
	a := NewArchive(kv)

	_, err := a.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
	assert.NotContains(t, kv, SnapshotKey)

	_, err = a.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
