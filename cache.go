package sessioncache

import (
	"context"
	"errors"

	c "github.com/mythfish/sessioncache/codec"
	"github.com/mythfish/sessioncache/internal/keyutil"
	pr "github.com/mythfish/sessioncache/provider"
)

var errEmptyKey = errors.New("key has empty string form")

// memcache adapts one region's remote client to the Cache contract.
// It owns no state beyond the client reference, the codec, and a
// logger; all caching semantics live on the remote side.
type memcache[K comparable, V any] struct {
	client pr.Client
	codec  c.Codec[V]
	log    Logger
}

func newMemcache[K comparable, V any](client pr.Client, opts Options[V]) *memcache[K, V] {
	m := &memcache[K, V]{client: client}
	m.codec = coalesce[c.Codec[V]](opts.Codec, c.JSON[V]{})
	m.log = coalesce[Logger](opts.Logger, NopLogger{})
	return m
}

func (m *memcache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V
	sk := keyutil.Canonical(key)
	m.log.Debug("getting object from cache", Fields{"cache": m.client.Name(), "key": sk})
	if sk == "" {
		return zero, false, nil
	}
	v, ok, err := m.lookup(ctx, sk)
	if err != nil {
		return zero, false, &OpError{Op: "get", Cache: m.client.Name(), Key: sk, Err: err}
	}
	return v, ok, nil
}

func (m *memcache[K, V]) Put(ctx context.Context, key K, value V) (V, bool, error) {
	var zero V
	sk := keyutil.Canonical(key)
	m.log.Debug("putting object in cache", Fields{"cache": m.client.Name(), "key": sk})
	if sk == "" {
		return zero, false, &OpError{Op: "put", Cache: m.client.Name(), Err: errEmptyKey}
	}
	// Read-then-write: the previous value can be stale if a concurrent
	// writer lands between the two calls.
	prev, replaced, err := m.lookup(ctx, sk)
	if err != nil {
		return zero, false, &OpError{Op: "put", Cache: m.client.Name(), Key: sk, Err: err}
	}
	raw, err := m.codec.Encode(value)
	if err != nil {
		return zero, false, &OpError{Op: "put", Cache: m.client.Name(), Key: sk, Err: err}
	}
	if err := m.client.Set(ctx, sk, raw, pr.NoExpiry); err != nil {
		return zero, false, &OpError{Op: "put", Cache: m.client.Name(), Key: sk, Err: err}
	}
	return prev, replaced, nil
}

func (m *memcache[K, V]) Remove(ctx context.Context, key K) (V, bool, error) {
	var zero V
	sk := keyutil.Canonical(key)
	m.log.Debug("removing object from cache", Fields{"cache": m.client.Name(), "key": sk})
	if sk == "" {
		return zero, false, nil
	}
	prev, removed, err := m.lookup(ctx, sk)
	if err != nil {
		return zero, false, &OpError{Op: "remove", Cache: m.client.Name(), Key: sk, Err: err}
	}
	if err := m.client.Delete(ctx, sk); err != nil {
		return zero, false, &OpError{Op: "remove", Cache: m.client.Name(), Key: sk, Err: err}
	}
	return prev, removed, nil
}

func (m *memcache[K, V]) Clear(ctx context.Context) error {
	m.log.Debug("clearing all objects from cache", Fields{"cache": m.client.Name()})
	if err := m.client.Flush(ctx); err != nil {
		return &OpError{Op: "clear", Cache: m.client.Name(), Err: err}
	}
	return nil
}

// Size always reports 0. The memcached protocol cannot enumerate or
// count keys, so the contract is satisfied without claiming exactness.
func (m *memcache[K, V]) Size(context.Context) (int, error) { return 0, nil }

// Keys always reports an empty set; see Size.
func (m *memcache[K, V]) Keys(context.Context) ([]K, error) { return nil, nil }

// Values always reports an empty collection; see Size.
func (m *memcache[K, V]) Values(context.Context) ([]V, error) { return nil, nil }

func (m *memcache[K, V]) String() string {
	return "Memcache[" + m.client.Name() + "]"
}

// lookup fetches and decodes sk, returning the raw client or codec
// error for the caller to wrap with the operation that triggered it.
func (m *memcache[K, V]) lookup(ctx context.Context, sk string) (V, bool, error) {
	var zero V
	raw, ok, err := m.client.Get(ctx, sk)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := m.codec.Decode(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}
