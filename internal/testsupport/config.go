package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"talknotes/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// WithEditorCommand sets the editor command line.
func WithEditorCommand(command string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Editor.Command = command
	}
}

// WithoutLock disables the snapshot lock.
func WithoutLock() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Store.Lock = false
	}
}

// NewConfig produces a default config with logs under a per-test temp dir.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WriteConfig writes cfg as a TOML file at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[editor]\ncommand = %q\n\n[logging]\nformat = %q\nlevel = %q\ndir = %q\n\n[store]\nlock = %t\n",
		cfg.Editor.Command,
		cfg.Logging.Format,
		cfg.Logging.Level,
		cfg.Logging.Dir,
		cfg.Store.Lock,
	)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
