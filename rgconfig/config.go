// Package rgconfig loads the render graph compiler's ambient
// configuration and declarative graph descriptions from TOML, the way
// the wider corpus reaches for pelletier/go-toml/v2 for config rather
// than hand-rolling a flag set or an ini parser.
package rgconfig

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/rendergraph/rgcore"
)

// CompilerConfig holds the compiler's ambient tunables: everything that
// isn't part of the graph description itself.
type CompilerConfig struct {
	// LogLevel is one of "debug", "info", "warn", "error", "fatal".
	LogLevel string `toml:"log_level"`
}

// DefaultCompilerConfig mirrors the teacher's logger default (debug).
func DefaultCompilerConfig() *CompilerConfig {
	return &CompilerConfig{LogLevel: "info"}
}

// LoadCompilerConfig decodes a CompilerConfig from the TOML file at path.
func LoadCompilerConfig(path string) (*CompilerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rgconfig: read %s: %w", path, err)
	}
	cfg := DefaultCompilerConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("rgconfig: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Apply parses cfg.LogLevel and installs it as rgcore's active log level.
func (cfg *CompilerConfig) Apply() error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("rgconfig: invalid log_level %q: %w", cfg.LogLevel, err)
	}
	rgcore.SetLevel(level)
	return nil
}
