package ports

import "context"

// SnapshotStore is a flat key/value store for serialized game snapshots.
// Get returns ErrNotFound for a missing key; Delete of a missing key is not
// an error.
type SnapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}
