package testsupport

import (
	"testing"

	"relocarr/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp lock directory per
// test and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Run.LockDir = t.TempDir()
	cfg.Server.APIKey = APIKey

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}
