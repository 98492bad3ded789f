package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/minatgo/minatgo/internal/store"
)

// ErrNoSnapshot is returned when no result has been submitted yet.
var ErrNoSnapshot = errors.New("no saved result")

// KV is the storage the archive writes the snapshot to.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Archive keeps the last submitted snapshot under SnapshotKey.
type Archive struct {
	kv KV
}

func NewArchive(kv KV) *Archive {
	return &Archive{kv: kv}
}

// Save overwrites the stored snapshot.
func (a *Archive) Save(ctx context.Context, snap *Snapshot) error {
	data, err := snap.Encode()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return a.kv.Set(ctx, SnapshotKey, string(data))
}

// Load returns the stored snapshot. A snapshot that fails to decode is
// removed and reported as ErrCorruptSnapshot.
func (a *Archive) Load(ctx context.Context) (*Snapshot, error) {
	raw, err := a.kv.Get(ctx, SnapshotKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := DecodeSnapshot([]byte(raw))
	if err != nil {
		if clearErr := a.kv.Delete(ctx, SnapshotKey); clearErr != nil {
			return nil, errors.Join(err, fmt.Errorf("clear snapshot: %w", clearErr))
		}
		return nil, err
	}
	return snap, nil
}

// Clear removes the stored snapshot.
func (a *Archive) Clear(ctx context.Context) error {
	return a.kv.Delete(ctx, SnapshotKey)
}
