// Package ristretto implements provider.Client over dgraph-io/ristretto,
// an in-process store for development and tests.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/mythfish/sessioncache/provider"
)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

type Ristretto struct {
	name string
	c    *rc.Cache
}

var _ pr.Client = (*Ristretto)(nil)

func New(name string, cfg Config) (*Ristretto, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{name: name, c: c}, nil
}

func (p *Ristretto) Name() string { return p.name }

func (p *Ristretto) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set is buffered: ristretto applies writes asynchronously and may drop
// them under admission pressure. Rejection is not an error for a cache.
func (p *Ristretto) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl > 0 {
		p.c.SetWithTTL(key, value, int64(len(value)), ttl)
	} else {
		p.c.Set(key, value, int64(len(value)))
	}
	return nil
}

func (p *Ristretto) Delete(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Ristretto) Flush(_ context.Context) error {
	p.c.Clear()
	return nil
}

func (p *Ristretto) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Wait blocks until buffered writes are applied. Tests need it; the
// adapter never calls it.
func (p *Ristretto) Wait() { p.c.Wait() }

// Builder builds one independent in-process store per region.
type Builder struct {
	cfg Config
}

var _ pr.Builder = (*Builder)(nil)

func NewBuilder(cfg Config) *Builder { return &Builder{cfg: cfg} }

func (b *Builder) Build(name string) (pr.Client, error) {
	return New(name, b.cfg)
}
