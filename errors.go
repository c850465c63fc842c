package sessioncache

import (
	"errors"
	"fmt"
)

var (
	// ErrNoServers means the configuration carried no usable
	// `servers` entry. A remote cache cannot run without at least one
	// address.
	ErrNoServers = errors.New("sessioncache: no servers configured")

	// ErrNilClient is returned by New when no client is supplied.
	ErrNilClient = errors.New("sessioncache: nil client")
)

// ConfigError reports an unreadable or invalid configuration resource.
// Fatal at initialization: no client is constructed after one.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sessioncache: config %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// InitError reports a failure while building or connecting a remote
// client for a region.
type InitError struct {
	Region string
	Err    error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("sessioncache: init region %q: %v", e.Region, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// OpError wraps any fault raised by the remote client during a cache
// operation, so callers never depend on backend error types. Key is
// empty for whole-cache operations like clear.
type OpError struct {
	Op    string // "get", "put", "remove", "clear"
	Cache string // region name
	Key   string
	Err   error
}

func (e *OpError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("sessioncache: %s on cache %q: %v", e.Op, e.Cache, e.Err)
	}
	return fmt.Sprintf("sessioncache: %s key %q on cache %q: %v", e.Op, e.Key, e.Cache, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
