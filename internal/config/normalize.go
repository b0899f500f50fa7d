package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("BEATINFO_SONGS_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.CustomSongsDir = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("BEATINFO_WIP_SONGS_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.CustomWIPSongsDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.CustomSongsDir) == "" {
		c.Paths.CustomSongsDir = defaultCustomSongsDir
	}
	if strings.TrimSpace(c.Paths.CustomWIPSongsDir) == "" {
		c.Paths.CustomWIPSongsDir = defaultCustomWIPSongsDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if strings.TrimSpace(c.Paths.LockDir) == "" {
		c.Paths.LockDir = defaultLockDir()
	}

	var err error
	if c.Paths.CustomSongsDir, err = expandPath(c.Paths.CustomSongsDir); err != nil {
		return fmt.Errorf("paths.custom_songs_dir: %w", err)
	}
	if c.Paths.CustomWIPSongsDir, err = expandPath(c.Paths.CustomWIPSongsDir); err != nil {
		return fmt.Errorf("paths.custom_wip_songs_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.LockDir, err = expandPath(c.Paths.LockDir); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
