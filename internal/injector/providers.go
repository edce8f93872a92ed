package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/numsafe/internal/config"
	"github.com/zeusync/numsafe/internal/core/adapter"
	"github.com/zeusync/numsafe/internal/core/observability/log"
)

var (
	LoggerSet   = wire.NewSet(NewLogger)
	ReporterSet = wire.NewSet(LoggerSet, wire.Bind(new(log.Log), new(*log.Logger)), adapter.LogReporter)
)

// NewLogger builds the process logger at the configured level. A silent level
// yields a nop logger.
func NewLogger(cfg *config.Config) *log.Logger {
	if cfg.Log.Level == log.LevelSilent {
		return log.NewNop()
	}
	return log.New(cfg.Log.Level)
}
