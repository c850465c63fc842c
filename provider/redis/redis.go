// Package redis implements provider.Client over redis/go-redis. It is
// the alternative remote backend for deployments that already run
// Redis instead of memcached.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/mythfish/sessioncache/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

// Redis is a named region over a go-redis universal client.
type Redis struct {
	name        string
	rdb         goredis.UniversalClient
	closeClient bool
}

var _ pr.Client = (*Redis)(nil)

type Config struct {
	// Client to delegate to. Required by New; Builder constructs its
	// own.
	Client goredis.UniversalClient

	// CloseClient makes Close tear down the underlying client. Set it
	// only when this region exclusively owns the connection.
	CloseClient bool
}

// New wraps an existing go-redis client as a region.
func New(name string, cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{name: name, rdb: cfg.Client, closeClient: cfg.CloseClient}, nil
}

func (p *Redis) Name() string { return p.name }

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0 // non-positive TTL means no expiry
	}
	return p.rdb.Set(ctx, key, value, ttl).Err()
}

func (p *Redis) Delete(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

// Flush issues FLUSHALL: every database on the server, not just keys
// written through this region.
func (p *Redis) Flush(ctx context.Context) error {
	return p.rdb.FlushAll(ctx).Err()
}

// Close releases the underlying client only when this region owns it.
// Repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

// Builder constructs one owning Redis client per region against a
// shared address list.
type Builder struct {
	addrs []string
}

var _ pr.Builder = (*Builder)(nil)

func NewBuilder(addrs []string) (*Builder, error) {
	if len(addrs) == 0 {
		return nil, errors.New("redis provider: no server addresses")
	}
	return &Builder{addrs: addrs}, nil
}

func (b *Builder) Build(name string) (pr.Client, error) {
	rdb := goredis.NewUniversalClient(&goredis.UniversalOptions{Addrs: b.addrs})
	return New(name, Config{Client: rdb, CloseClient: true})
}
