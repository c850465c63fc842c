// Package bigcache implements provider.Client over allegro/bigcache.
// It keeps everything in process memory, which makes it useful for
// development and tests that should not depend on a network service.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	pr "github.com/mythfish/sessioncache/provider"
)

type Config struct {
	// LifeWindow is the global entry lifetime. BigCache has no
	// per-entry TTL, so the Set ttl argument is ignored.
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

type BigCache struct {
	name string
	c    *bc.BigCache
}

var _ pr.Client = (*BigCache)(nil)

func New(name string, cfg Config) (*BigCache, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &BigCache{name: name, c: c}, nil
}

func (p *BigCache) Name() string { return p.name }

func (p *BigCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := p.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (p *BigCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	return p.c.Set(key, value)
}

func (p *BigCache) Delete(_ context.Context, key string) error {
	err := p.c.Delete(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (p *BigCache) Flush(_ context.Context) error {
	return p.c.Reset()
}

func (p *BigCache) Close(_ context.Context) error {
	return p.c.Close()
}

// Builder builds one in-process store per region. Unlike the remote
// builders, regions built here share nothing, so Flush really is
// region-scoped.
type Builder struct {
	cfg Config
}

var _ pr.Builder = (*Builder)(nil)

func NewBuilder(cfg Config) *Builder { return &Builder{cfg: cfg} }

func (b *Builder) Build(name string) (pr.Client, error) {
	return New(name, b.cfg)
}
