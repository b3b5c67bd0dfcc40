package rgconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCompilerConfig(t *testing.T) {
	cfg := DefaultCompilerConfig()
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadCompilerConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compiler.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "warn"`), 0o644))

	cfg, err := LoadCompilerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadCompilerConfig_MissingFile(t *testing.T) {
	_, err := LoadCompilerConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCompilerConfig_ApplyInvalidLevel(t *testing.T) {
	cfg := &CompilerConfig{LogLevel: "not-a-level"}
	err := cfg.Apply()
	assert.Error(t, err)
}

func TestCompilerConfig_ApplyValidLevel(t *testing.T) {
	cfg := &CompilerConfig{LogLevel: "debug"}
	assert.NoError(t, cfg.Apply())
}
