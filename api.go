package sessioncache

import (
	"context"

	c "github.com/mythfish/sessioncache/codec"
	pr "github.com/mythfish/sessioncache/provider"
)

// Cache is the uniform cache contract the security framework consumes,
// bound to one named region of the remote service.
//
// K must have a canonical, stable string representation: plain strings
// are used as-is, fmt.Stringer keys use String(), anything else goes
// through fmt.Sprint. That string IS the remote key; no other key
// serialization happens.
type Cache[K comparable, V any] interface {
	// Get returns the value stored under key, or (zero, false, nil)
	// when the key is absent. A remote miss is indistinguishable from
	// a key that was never set or has expired.
	Get(ctx context.Context, key K) (V, bool, error)

	// Put stores value under key with no expiration and reports the
	// value previously stored there. The previous value comes from a
	// read preceding the write and is only a best-effort snapshot
	// under concurrent writers.
	Put(ctx context.Context, key K, value V) (prev V, replaced bool, err error)

	// Remove deletes key and reports the value it held. Removing an
	// absent key is a no-op, not an error. The previous value carries
	// the same best-effort caveat as Put.
	Remove(ctx context.Context, key K) (prev V, removed bool, err error)

	// Clear flushes the underlying client. For remote backends the
	// flush is namespace-wide, NOT scoped to this region.
	Clear(ctx context.Context) error

	// Size always reports 0: the remote protocol cannot count keys.
	Size(ctx context.Context) (int, error)

	// Keys always reports an empty set, for the same reason as Size.
	Keys(ctx context.Context) ([]K, error)

	// Values always reports an empty collection.
	Values(ctx context.Context) ([]V, error)

	// String identifies the adapter by its region name.
	String() string
}

// Options tune one cache adapter. The zero value is usable.
type Options[V any] struct {
	Codec  c.Codec[V] // nil => codec.JSON[V]
	Logger Logger     // nil => NopLogger
}

// New wraps a pre-built client in a cache adapter for the client's
// region. The client is required; adapters built by a Manager share the
// registry's clients, and a fresh adapter per call is cheap.
func New[K comparable, V any](client pr.Client, opts Options[V]) (Cache[K, V], error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return newMemcache[K, V](client, opts), nil
}
