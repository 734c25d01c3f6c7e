package app

import (
	"fmt"
	"net/http"
	"os"

	"github.com/pelletier/go-toml/v2"

	"libprime/internal/ffi"
)

// Backend names accepted in Config.Backend.
const (
	BackendNative = "native"
	BackendFFI    = "ffi"
	BackendRemote = "remote"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Backend  string `toml:"backend"`   // native | ffi | remote
	Library  string `toml:"library"`   // shared library path, ffi backend
	Remote   string `toml:"remote"`    // primed base URL, e.g. http://127.0.0.1:8089
	Workers  int    `toml:"workers"`   // scan fan-out; 0 means GOMAXPROCS
	LogLevel string `toml:"log_level"` // debug | info | warn | error
	Listen   string `toml:"listen"`    // primed listen address

	HTTP *http.Client `toml:"-"` // optional; defaults to http.DefaultClient
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Backend:  BackendNative,
		Library:  "./" + ffi.DefaultName(),
		Remote:   "http://127.0.0.1:8089",
		LogLevel: "info",
		Listen:   ":8089",
	}
}

// ParseConfig decodes raw TOML on top of the defaults.
func ParseConfig(raw []byte) (Config, error) {
	c := DefaultConfig()
	if err := toml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, c.Validate()
}

// LoadConfig reads the TOML file at path. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s could not be read: %w", path, err)
	}
	return ParseConfig(raw)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendNative:
	case BackendFFI:
		if c.Library == "" {
			return fmt.Errorf("config: backend %q needs library", c.Backend)
		}
	case BackendRemote:
		if c.Remote == "" {
			return fmt.Errorf("config: backend %q needs remote", c.Backend)
		}
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	return nil
}
