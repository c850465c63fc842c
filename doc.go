// Package sessioncache backs a security framework's session and
// authorization caches with a remote key-value service (memcached by
// default) instead of an in-process store.
//
// Components:
//   - Manager: loads an INI server list, builds a client Builder, and
//     lazily creates one remote client per named cache region. Regions
//     created by the Manager itself are torn down by Destroy; injected
//     infrastructure is left alone.
//   - Cache[K, V]: per-region adapter translating Get/Put/Remove/Clear
//     into client calls. Keys are coerced to their canonical string
//     form; values go through a pluggable Codec[V].
//   - provider.Client: the remote client abstraction (memcached, redis,
//     or an in-process store for development).
//
// Typical flow:
//
//	m := sessioncache.NewManager(sessioncache.ManagerOptions{ConfigFile: "sessioncache.ini"})
//	c, err := sessioncache.GetCache[string, Token](m, "sessions", sessioncache.Options[Token]{})
//	_, _, err = c.Put(ctx, "alice", tok)
//
// Put and Remove report the previous value via a read that precedes
// the write. The two calls are not atomic; a concurrent writer between
// them can be lost. This mirrors the remote protocol, which has no
// get-and-set, and callers must treat the previous value as a
// best-effort snapshot.
//
// Size, Keys, and Values are stubs returning zero and empty results:
// the memcached protocol offers no efficient key enumeration, so the
// framework contract is satisfied without claiming exactness.
package sessioncache
