package injector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/numsafe/internal/config"
	"github.com/zeusync/numsafe/internal/core/observability/log"
)

func TestProvideLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = log.LevelWarn
	require.Equal(t, log.LevelWarn, ProvideLogger(&cfg).GetLevel())

	cfg.Log.Level = log.LevelSilent
	require.Equal(t, log.LevelSilent, ProvideLogger(&cfg).GetLevel())
}

func TestProvideReporter(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = log.LevelSilent
	r := ProvideReporter(&cfg)
	require.NotNil(t, r)
	require.NotPanics(t, func() { r.Warn("ignored") })
}
