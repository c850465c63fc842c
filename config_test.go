package sessioncache

import (
	"errors"
	"testing"
)

func TestParseServers(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"127.0.0.1:11211", []string{"127.0.0.1:11211"}},
		{"a.example:11211,b.example:11211", []string{"a.example:11211", "b.example:11211"}},
		{"a.example:11211 b.example:11211", []string{"a.example:11211", "b.example:11211"}},
		{"  a.example:11211 ,\tb.example:11212  ", []string{"a.example:11211", "b.example:11212"}},
		{"[::1]:11211", []string{"[::1]:11211"}},
	}
	for _, tc := range cases {
		got, err := parseServers(tc.in)
		if err != nil {
			t.Fatalf("parseServers(%q): %v", tc.in, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("parseServers(%q) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("parseServers(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestParseServersEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", ",,", " , "} {
		if _, err := parseServers(in); !errors.Is(err, ErrNoServers) {
			t.Fatalf("parseServers(%q): want ErrNoServers, got %v", in, err)
		}
	}
}

func TestParseServersMalformed(t *testing.T) {
	for _, in := range []string{"nohost", "host:port:extra"} {
		if _, err := parseServers(in); err == nil {
			t.Fatalf("parseServers(%q) should fail", in)
		}
	}
}

func TestLoadConfigEmbeddedDefault(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig embedded: %v", err)
	}
	if len(cfg.Servers) != 1 || cfg.Servers[0] != "127.0.0.1:11211" {
		t.Fatalf("embedded default servers = %v", cfg.Servers)
	}
}
