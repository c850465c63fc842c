// Package memcached implements provider.Client over
// github.com/bradfitz/gomemcache. This is the primary backend: one
// gomemcache client per region, all regions sharing the same server
// list.
package memcached

import (
	"context"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"

	pr "github.com/mythfish/sessioncache/provider"
)

// DefaultAddr is used when a Config carries no addresses, matching the
// conventional local memcached port.
const DefaultAddr = "127.0.0.1:11211"

var ErrNoAddrs = errors.New("memcached: no server addresses")

type Config struct {
	// Addrs are host:port endpoints. Empty means DefaultAddr.
	Addrs []string

	// Timeout bounds socket reads and writes. Zero keeps the
	// gomemcache default (100ms).
	Timeout time.Duration

	// MaxIdleConns caps idle connections per address. Zero keeps the
	// gomemcache default.
	MaxIdleConns int
}

// Memcached is a named region over a gomemcache client.
type Memcached struct {
	name string
	mc   *memcache.Client
}

var _ pr.Client = (*Memcached)(nil)

// New builds a client for one region. The returned client owns its
// connections; Close releases them.
func New(name string, cfg Config) (*Memcached, error) {
	addrs := cfg.Addrs
	if len(addrs) == 0 {
		addrs = []string{DefaultAddr}
	}
	mc := memcache.New(addrs...)
	if cfg.Timeout > 0 {
		mc.Timeout = cfg.Timeout
	}
	if cfg.MaxIdleConns > 0 {
		mc.MaxIdleConns = cfg.MaxIdleConns
	}
	return &Memcached{name: name, mc: mc}, nil
}

func (c *Memcached) Name() string { return c.name }

func (c *Memcached) Get(_ context.Context, key string) ([]byte, bool, error) {
	it, err := c.mc.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return it.Value, true, nil
}

func (c *Memcached) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var exp int32
	if ttl > 0 {
		exp = int32(ttl / time.Second)
	}
	return c.mc.Set(&memcache.Item{Key: key, Value: value, Expiration: exp})
}

func (c *Memcached) Delete(_ context.Context, key string) error {
	err := c.mc.Delete(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil
	}
	return err
}

// Flush invalidates every item on every configured server, not just
// keys written through this region.
func (c *Memcached) Flush(_ context.Context) error {
	return c.mc.FlushAll()
}

func (c *Memcached) Close(_ context.Context) error {
	return c.mc.Close()
}

// Builder builds one Memcached client per region from a shared Config.
type Builder struct {
	cfg Config
}

var _ pr.Builder = (*Builder)(nil)

func NewBuilder(cfg Config) (*Builder, error) {
	if len(cfg.Addrs) == 0 {
		return nil, ErrNoAddrs
	}
	return &Builder{cfg: cfg}, nil
}

func (b *Builder) Build(name string) (pr.Client, error) {
	return New(name, b.cfg)
}
