package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxwalk/internal/config"
	"loxwalk/internal/trace"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "loxwalk.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultPromptWhenUnset(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "> ", cfg.Prompt())
}

func TestLoadsPromptTraceAndAllowlist(t *testing.T) {
	path := writeConfig(t, `
[repl]
prompt = "lox> "

[trace]
enabled = true
level = "debug"

[native]
allow = ["println", "clock"]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lox> ", cfg.Prompt())
	assert.Equal(t, trace.LevelDebug, cfg.TraceLevel())

	allow := cfg.NativeAllowlist()
	require.NotNil(t, allow)
	assert.True(t, allow["println"])
	assert.True(t, allow["clock"])
	assert.False(t, allow["read_file"])
}

func TestTraceDisabledByDefault(t *testing.T) {
	path := writeConfig(t, `[repl]
prompt = "lox> "
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, trace.LevelOff, cfg.TraceLevel())
}

func TestEmptyAllowlistMeansAllowEverything(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, cfg.NativeAllowlist())
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := writeConfig(t, "this is not valid toml [[[")
	_, err := config.Load(path)
	assert.Error(t, err)
}
