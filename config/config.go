// Package config holds path derivation for the networkd runtime state
// tree and configuration for the networkdctl tool.
//
// Tool configuration is loaded with overlay semantics:
//
//  1. Start with built-in defaults (embedded from default.toml)
//  2. Overlay with config file values (if the file exists)
//  3. CLI flags and environment variables override at runtime
//
// The TOML decoder only sets fields present in the file, leaving
// unspecified fields at their defaults, so a valid configuration is
// always available. A config file that exists but fails to parse is an
// error rather than a silent fallback.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigTOML string

// DefaultConfigPath is the default path to the networkdctl config file.
const DefaultConfigPath = "/etc/networkdctl/config.toml"

// Config is the top-level networkdctl configuration.
type Config struct {
	// Namespace selects the networkd instance to query by default.
	Namespace string        `toml:"namespace"`
	Logging   LoggingConfig `toml:"logging"`
}

// LoggingConfig controls logging behaviour.
type LoggingConfig struct {
	// Level is the log spec (e.g., "info" or "info,monitor=debug").
	Level string `toml:"level"`
	// Format is the output format: "text" or "json".
	Format string `toml:"format"`
	// Components provides an alternative way to set per-component levels.
	Components map[string]string `toml:"components"`
}

// ToSpec converts the LoggingConfig to a log spec string. Level takes
// precedence; otherwise Components are joined onto an info base.
func (c *LoggingConfig) ToSpec() string {
	if c.Level != "" {
		return c.Level
	}
	if len(c.Components) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c.Components)+1)
	parts = append(parts, "info")
	for component, level := range c.Components {
		parts = append(parts, component+"="+level)
	}
	return strings.Join(parts, ",")
}

// DefaultConfig returns the configuration from the embedded
// default.toml. This baseline is always valid.
func DefaultConfig() Config {
	var cfg Config
	if _, err := toml.Decode(defaultConfigTOML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default.toml is invalid: %v", err))
	}
	return cfg
}

// Load reads configuration from path, overlaying it on the embedded
// defaults. A missing file yields the defaults; an unreadable or
// invalid file is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
