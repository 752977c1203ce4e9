// Package kvstore keeps opaque values under string keys. Get reports a
// missing key as an infra.KindNotFound error.
package kvstore

import "context"

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
