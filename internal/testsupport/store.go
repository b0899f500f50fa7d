package testsupport

import (
	"testing"

	"beatinfo/internal/config"
	"beatinfo/internal/infodat"
	"beatinfo/internal/logging"
)

// NewStore builds an infodat.Store from cfg with a discarding logger.
func NewStore(t testing.TB, cfg *config.Config) *infodat.Store {
	t.Helper()

	return infodat.NewStore(infodat.Options{
		Roots:   cfg,
		LockDir: cfg.Paths.LockDir,
		Backup:  cfg.Info.Backup,
		Logger:  logging.NewNop(),
	})
}
