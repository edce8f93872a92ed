package adapter

import "github.com/zeusync/numsafe/internal/core/observability/log"

// Reporter receives human-readable diagnostics about sanitization. It is a
// subset of log.Log, so any logger can be used directly.
type Reporter interface {
	Warn(msg string, fields ...log.Field)
	Info(msg string, fields ...log.Field)
}

var (
	_ Reporter = NopReporter{}
	_ Reporter = (*log.Logger)(nil)
)

// NopReporter discards every diagnostic.
type NopReporter struct{}

func (NopReporter) Warn(string, ...log.Field) {}
func (NopReporter) Info(string, ...log.Field) {}

// FuncReporter adapts plain callbacks. Nil callbacks are skipped.
type FuncReporter struct {
	OnWarn func(msg string, fields ...log.Field)
	OnInfo func(msg string, fields ...log.Field)
}

func (r FuncReporter) Warn(msg string, fields ...log.Field) {
	if r.OnWarn != nil {
		r.OnWarn(msg, fields...)
	}
}

func (r FuncReporter) Info(msg string, fields ...log.Field) {
	if r.OnInfo != nil {
		r.OnInfo(msg, fields...)
	}
}

// LogReporter scopes a logger to the adapter component. A nil logger, typed
// or not, yields NopReporter.
func LogReporter(l log.Log) Reporter {
	if l == nil {
		return NopReporter{}
	}
	if lg, ok := l.(*log.Logger); ok && lg == nil {
		return NopReporter{}
	}
	return l.With(log.String("component", "sanitize"))
}
