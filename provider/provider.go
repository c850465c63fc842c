// Package provider defines the remote-client abstraction used by
// sessioncache.
//
// A Client is a string-keyed byte store. Value serialization is NOT the
// client's concern: the adapter encodes values through a Codec before
// they reach Set, and Get must hand back exactly the bytes that were
// stored. Wire protocol, connection pooling, and timeouts belong to the
// implementation (memcached, redis, or an in-process store).
package provider

import (
	"context"
	"time"
)

// NoExpiry is the TTL sentinel meaning "store without expiration".
const NoExpiry time.Duration = 0

// Client is a named connection to one cache region's backing store.
// Implementations must be safe for concurrent use; every call blocks
// until the backend responds or the client's own timeout fires.
type Client interface {
	// Name returns the region name the client was built for.
	Name() string

	// Get returns (value, true, nil) on hit and (nil, false, nil) on
	// miss. A miss and a never-written key are indistinguishable.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key. ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Flush drops every entry the client can reach. Depending on the
	// backend this is namespace-wide (memcached flush_all, redis
	// FLUSHALL), not scoped to the region name.
	Flush(ctx context.Context) error

	// Close releases resources. Safe to call more than once.
	Close(ctx context.Context) error
}

// Builder constructs one Client per region name. Builders are immutable
// once created and may be shared by concurrent callers.
type Builder interface {
	Build(name string) (Client, error)
}
