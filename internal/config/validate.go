package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.CustomSongsDir == "" {
		return errors.New("paths.custom_songs_dir must be set")
	}
	if c.Paths.CustomWIPSongsDir == "" {
		return errors.New("paths.custom_wip_songs_dir must be set")
	}
	if filepath.Clean(c.Paths.CustomSongsDir) == filepath.Clean(c.Paths.CustomWIPSongsDir) {
		return errors.New("paths.custom_songs_dir and paths.custom_wip_songs_dir must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
}
