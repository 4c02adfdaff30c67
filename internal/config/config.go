// Package config loads the interpreter's optional TOML configuration
// file: REPL prompt, tracing, and the native-function allowlist. Shape
// grounded on cmd/surge's surge.toml loader (a toml.DecodeFile call plus
// a metadata check for which tables were actually present).
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"loxwalk/internal/trace"
)

// Config is the decoded form of a loxwalk config file. Every field has a
// usable zero value, so a missing file (or a missing table within one)
// just means "use the default".
type Config struct {
	REPL   replConfig   `toml:"repl"`
	Trace  traceConfig  `toml:"trace"`
	Native nativeConfig `toml:"native"`
}

type replConfig struct {
	Prompt string `toml:"prompt"`
}

type traceConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
}

type nativeConfig struct {
	Allow []string `toml:"allow"`
}

// Default returns the configuration used when no --config file is given.
func Default() Config {
	return Config{REPL: replConfig{Prompt: "> "}}
}

// Load decodes path as a Config. A missing or empty table in the
// document simply leaves that section at its zero value.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Prompt returns the configured REPL prompt, or "> " if unset.
func (c Config) Prompt() string {
	if c.REPL.Prompt == "" {
		return "> "
	}
	return c.REPL.Prompt
}

// TraceLevel resolves the configured trace level: LevelOff when tracing
// is disabled, and LevelPhase when it is enabled but the level string is
// absent or not a recognised level.
func (c Config) TraceLevel() trace.Level {
	if !c.Trace.Enabled {
		return trace.LevelOff
	}
	lvl, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return trace.LevelPhase
	}
	return lvl
}

// NativeAllowlist returns the configured set of permitted native
// function names, or nil (meaning "allow everything") when unset.
func (c Config) NativeAllowlist() map[string]bool {
	if len(c.Native.Allow) == 0 {
		return nil
	}
	allow := make(map[string]bool, len(c.Native.Allow))
	for _, name := range c.Native.Allow {
		allow[strings.TrimSpace(name)] = true
	}
	return allow
}
