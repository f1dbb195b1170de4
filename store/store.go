// Package libpack_store keeps the small amount of state that has to survive between
// workflow runs, such as the id of a registered webhook subscription.
package libpack_store

import "context"

// Store is a string key-value store. Get reports whether the key was present.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
