package sessioncache

import (
	_ "embed"
	"fmt"
	"net"
	"strings"
	"unicode"

	ini "gopkg.in/ini.v1"
)

const (
	configSectionMain = "main"
	configKeyServers  = "servers"
)

// defaultConfigPath labels the embedded fallback in errors and logs.
const defaultConfigPath = "<embedded sessioncache.ini>"

//go:embed sessioncache.ini
var defaultConfigData []byte

// Config is the parsed client configuration: an ordered server list,
// immutable once the Manager is initialized.
type Config struct {
	Servers []string
}

// loadConfig reads the INI resource at path, or the embedded default
// when path is empty, and extracts the [main] servers list.
func loadConfig(path string) (*Config, error) {
	src, label := any(path), path
	if path == "" {
		src, label = defaultConfigData, defaultConfigPath
	}
	f, err := ini.Load(src)
	if err != nil {
		return nil, &ConfigError{Path: label, Err: err}
	}
	servers, err := parseServers(f.Section(configSectionMain).Key(configKeyServers).String())
	if err != nil {
		return nil, &ConfigError{Path: label, Err: err}
	}
	return &Config{Servers: servers}, nil
}

// parseServers splits a space/comma-delimited host:port list and
// validates each endpoint. An empty list is an error: a remote cache
// cannot be used without at least one address.
func parseServers(s string) ([]string, error) {
	addrs := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(addrs) == 0 {
		return nil, ErrNoServers
	}
	for _, a := range addrs {
		if _, _, err := net.SplitHostPort(a); err != nil {
			return nil, fmt.Errorf("server address %q: %w", a, err)
		}
	}
	return addrs, nil
}
