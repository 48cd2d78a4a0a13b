package repository

import "context"

// KVRepository stores one opaque value per key. Put always overwrites.
type KVRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
