package testsupport

import (
	"path/filepath"
	"testing"

	"beatinfo/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Song roots are not created; the store creates package directories on save.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CustomSongsDir = filepath.Join(base, "CustomLevels")
	cfgVal.Paths.CustomWIPSongsDir = filepath.Join(base, "CustomWIPLevels")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.LockDir = filepath.Join(base, "locks")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBackup toggles info.dat backups on save.
func WithBackup(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Info.Backup = enabled
	}
}

// WithLogFile enables file logging inside the temp log directory.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = true
	}
}

// WithoutLocking clears the lock directory so saves skip the package lock.
func WithoutLocking() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LockDir = ""
	}
}

// BaseDir returns the temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CustomSongsDir)
}
