package sessioncache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	pr "github.com/mythfish/sessioncache/provider"
)

// countingBuilder builds memClients and records how many times it ran,
// so tests can observe get-or-create behavior.
type countingBuilder struct {
	builds   atomic.Int32
	buildErr error
}

var _ pr.Builder = (*countingBuilder)(nil)

func (b *countingBuilder) Build(name string) (pr.Client, error) {
	if b.buildErr != nil {
		return nil, b.buildErr
	}
	b.builds.Add(1)
	return newMemClient(name), nil
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessioncache.ini")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestGetCacheSameRegionSharesClient(t *testing.T) {
	ctx := context.Background()
	b := &countingBuilder{}
	m := NewManager(ManagerOptions{Builder: b})

	c1, err := GetCache[string, string](m, "sessions", Options[string]{})
	if err != nil {
		t.Fatalf("GetCache: %v", err)
	}
	c2, err := GetCache[string, string](m, "sessions", Options[string]{})
	if err != nil {
		t.Fatalf("GetCache: %v", err)
	}
	if n := b.builds.Load(); n != 1 {
		t.Fatalf("one region should mean one client, built %d", n)
	}

	// Distinct adapter instances over the same region see each other's
	// writes.
	if _, _, err := c1.Put(ctx, "k", "v"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got, ok, _ := c2.Get(ctx, "k"); !ok || got != "v" {
		t.Fatalf("second adapter should read the first's write, ok=%v got=%q", ok, got)
	}
}

func TestDistinctRegionsGetDistinctClients(t *testing.T) {
	b := &countingBuilder{}
	m := NewManager(ManagerOptions{Builder: b})

	if _, err := m.Client("sessions"); err != nil {
		t.Fatalf("Client: %v", err)
	}
	if _, err := m.Client("authz"); err != nil {
		t.Fatalf("Client: %v", err)
	}
	if n := b.builds.Load(); n != 2 {
		t.Fatalf("two regions should mean two clients, built %d", n)
	}
}

func TestConcurrentFirstAccessBuildsOneClient(t *testing.T) {
	b := &countingBuilder{}
	m := NewManager(ManagerOptions{Builder: b})

	const callers = 32
	var wg sync.WaitGroup
	clients := make([]pr.Client, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cl, err := m.Client("sessions")
			if err != nil {
				t.Errorf("Client: %v", err)
				return
			}
			clients[i] = cl
		}(i)
	}
	wg.Wait()

	if n := b.builds.Load(); n != 1 {
		t.Fatalf("concurrent first access built %d clients", n)
	}
	for i := 1; i < callers; i++ {
		if clients[i] != clients[0] {
			t.Fatalf("caller %d observed a different client", i)
		}
	}
}

func TestInitIdempotent(t *testing.T) {
	path := writeConfig(t, "[main]\nservers = 127.0.0.1:11211\n")
	m := NewManager(ManagerOptions{ConfigFile: path})

	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := m.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if _, err := m.Client("sessions"); err != nil {
		t.Fatalf("Client after Init: %v", err)
	}
}

func TestServerListParsedFromConfig(t *testing.T) {
	path := writeConfig(t, "[main]\nservers = 10.0.0.1:11211, 10.0.0.2:11211 10.0.0.3:11212\n")
	m := NewManager(ManagerOptions{ConfigFile: path})

	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	want := []string{"10.0.0.1:11211", "10.0.0.2:11211", "10.0.0.3:11212"}
	if len(m.cfg.Servers) != len(want) {
		t.Fatalf("servers = %v, want %v", m.cfg.Servers, want)
	}
	for i := range want {
		if m.cfg.Servers[i] != want[i] {
			t.Fatalf("servers = %v, want %v", m.cfg.Servers, want)
		}
	}
}

func TestMissingServersIsConfigError(t *testing.T) {
	for name, contents := range map[string]string{
		"no key":    "[main]\n",
		"empty key": "[main]\nservers =\n",
		"no main":   "[other]\nservers = 127.0.0.1:11211\n",
	} {
		path := writeConfig(t, contents)
		m := NewManager(ManagerOptions{ConfigFile: path})

		err := m.Init()
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || !errors.Is(err, ErrNoServers) {
			t.Fatalf("%s: want ConfigError wrapping ErrNoServers, got %v", name, err)
		}
		// Initialization failures leave the registry unusable.
		if _, err := m.Client("sessions"); err == nil {
			t.Fatalf("%s: Client should fail after config error", name)
		}
	}
}

func TestUnreadableConfigIsConfigError(t *testing.T) {
	m := NewManager(ManagerOptions{ConfigFile: filepath.Join(t.TempDir(), "absent.ini")})

	err := m.Init()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestClientBuildFailureIsInitError(t *testing.T) {
	b := &countingBuilder{buildErr: errors.New("connect refused")}
	m := NewManager(ManagerOptions{Builder: b})

	_, err := m.Client("sessions")
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Region != "sessions" {
		t.Fatalf("want InitError for region, got %v", err)
	}
}

func TestEmptyRegionName(t *testing.T) {
	m := NewManager(ManagerOptions{Builder: &countingBuilder{}})
	if _, err := m.Client(""); err == nil {
		t.Fatalf("empty region name should fail")
	}
}

func TestDestroyLeavesInjectedInfrastructureAlone(t *testing.T) {
	ctx := context.Background()
	b := &countingBuilder{}
	m := NewManager(ManagerOptions{Builder: b})

	cl, err := m.Client("sessions")
	if err != nil {
		t.Fatalf("Client: %v", err)
	}

	m.Destroy(ctx)

	if cl.(*memClient).closed {
		t.Fatalf("injected infrastructure must not be torn down")
	}
	again, err := m.Client("sessions")
	if err != nil {
		t.Fatalf("Client after Destroy: %v", err)
	}
	if again != cl {
		t.Fatalf("registry should survive Destroy when infrastructure was injected")
	}
}

func TestDestroyResetsImplicitInfrastructure(t *testing.T) {
	ctx := context.Background()
	path := writeConfig(t, "[main]\nservers = 127.0.0.1:11211\n")
	m := NewManager(ManagerOptions{ConfigFile: path})

	if _, err := m.Client("sessions"); err != nil {
		t.Fatalf("Client: %v", err)
	}

	m.Destroy(ctx)

	m.mu.RLock()
	discarded := m.clients == nil && m.cfg == nil && m.builder == nil && !m.implicit
	m.mu.RUnlock()
	if !discarded {
		t.Fatalf("Destroy should discard registry, config, and builder")
	}

	// A later request rebuilds from configuration.
	if _, err := m.Client("sessions"); err != nil {
		t.Fatalf("Client after Destroy: %v", err)
	}
}

// TestSessionScenario walks the documented end-to-end flow: configure a
// server list, acquire the sessions region, store, read, and revoke a
// token.
func TestSessionScenario(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ManagerOptions{Builder: &countingBuilder{}})

	cc, err := GetCache[string, string](m, "sessions", Options[string]{})
	if err != nil {
		t.Fatalf("GetCache: %v", err)
	}
	if _, _, err := cc.Put(ctx, "alice", "token123"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got, ok, _ := cc.Get(ctx, "alice"); !ok || got != "token123" {
		t.Fatalf("Get: ok=%v got=%q", ok, got)
	}
	if _, _, err := cc.Remove(ctx, "alice"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := cc.Get(ctx, "alice"); ok {
		t.Fatalf("token should be gone after Remove")
	}
	m.Destroy(ctx)
}
