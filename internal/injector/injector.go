//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/numsafe/internal/config"
	"github.com/zeusync/numsafe/internal/core/adapter"
	"github.com/zeusync/numsafe/internal/core/observability/log"
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	wire.Build(LoggerSet)
	return nil
}

func ProvideReporter(cfg *config.Config) adapter.Reporter {
	wire.Build(ReporterSet)
	return nil
}
