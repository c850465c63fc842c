package sessioncache

import (
	"context"
	"errors"
	"sync"

	"github.com/mythfish/sessioncache/provider"
	"github.com/mythfish/sessioncache/provider/memcached"
)

var errEmptyRegion = errors.New("empty region name")

// ManagerOptions configure a Manager. The zero value uses the embedded
// default configuration, the memcached builder, and no logging.
type ManagerOptions struct {
	// ConfigFile is the INI resource holding the [main] servers list.
	// Empty means the embedded default.
	ConfigFile string

	// Builder, when set, is injected infrastructure: the Manager uses
	// it as-is, never reads ConfigFile, and Destroy leaves everything
	// alone. The injecting component owns the teardown.
	Builder provider.Builder

	// Logger defaults to NopLogger.
	Logger Logger
}

// Manager is the client factory and region registry. It lazily loads
// configuration, constructs the client builder once, and hands out one
// client per region name with get-or-create semantics: concurrent first
// access for a name never produces two clients.
type Manager struct {
	log        Logger
	configFile string

	mu       sync.RWMutex
	clients  map[string]provider.Client
	builder  provider.Builder
	cfg      *Config
	implicit bool
}

func NewManager(opts ManagerOptions) *Manager {
	m := &Manager{
		log:        coalesce[Logger](opts.Logger, NopLogger{}),
		configFile: opts.ConfigFile,
	}
	if opts.Builder != nil {
		m.builder = opts.Builder
		m.clients = make(map[string]provider.Client)
	}
	return m
}

// Init ensures configuration is loaded and the builder constructed.
// Idempotent and safe to skip: the first cache request performs the
// same work.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureInfrastructure()
}

// ensureInfrastructure runs at most once per Manager lifetime, guarded
// by the unset registry map. Callers must hold mu.
func (m *Manager) ensureInfrastructure() error {
	if m.clients != nil {
		return nil
	}
	m.log.Debug("builder not set, constructing client infrastructure", nil)
	cfg, err := loadConfig(m.configFile)
	if err != nil {
		m.log.Error("cache configuration unusable", Fields{"err": err})
		return err
	}
	b, err := memcached.NewBuilder(memcached.Config{Addrs: cfg.Servers})
	if err != nil {
		return &ConfigError{Path: coalesce(m.configFile, defaultConfigPath), Err: err}
	}
	m.cfg = cfg
	m.builder = b
	m.clients = make(map[string]provider.Client)
	m.implicit = true
	m.log.Debug("implicit client infrastructure created", Fields{"servers": cfg.Servers})
	return nil
}

// Client returns the remote client for a region, creating it on first
// request. At most one client ever exists per name.
func (m *Manager) Client(name string) (provider.Client, error) {
	if name == "" {
		return nil, &InitError{Region: name, Err: errEmptyRegion}
	}

	m.mu.RLock()
	cl := m.clients[name]
	m.mu.RUnlock()
	if cl != nil {
		return cl, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureInfrastructure(); err != nil {
		return nil, err
	}
	if cl := m.clients[name]; cl != nil {
		m.log.Debug("using existing region client", Fields{"cache": name})
		return cl, nil
	}
	m.log.Info("region does not yet exist, creating now", Fields{"cache": name})
	cl, err := m.builder.Build(name)
	if err != nil {
		return nil, &InitError{Region: name, Err: err}
	}
	m.clients[name] = cl
	return cl, nil
}

// GetCache returns a cache adapter bound to the named region, creating
// the region's client as needed. Adapters are cheap; a fresh instance
// per call shares the registry's single client for that name.
//
// This is a free function because Go methods cannot carry their own
// type parameters.
func GetCache[K comparable, V any](m *Manager, name string, opts Options[V]) (Cache[K, V], error) {
	m.log.Debug("acquiring cache instance", Fields{"cache": name})
	cl, err := m.Client(name)
	if err != nil {
		return nil, err
	}
	return New[K, V](cl, opts)
}

// Destroy tears down the registry, configuration, and builder, but only
// when this Manager created them itself. Injected infrastructure is the
// injecting component's to shut down. Teardown faults are logged and
// swallowed; shutdown must proceed regardless.
func (m *Manager) Destroy(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.implicit {
		return
	}
	for name, cl := range m.clients {
		if err := cl.Close(ctx); err != nil {
			m.log.Warn("unable to cleanly shut down region client, ignoring",
				Fields{"cache": name, "err": err})
		}
	}
	m.clients = nil
	m.cfg = nil
	m.builder = nil
	m.implicit = false
}
