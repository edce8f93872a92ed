package adapter

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/numsafe/internal/core/observability/log"
	"github.com/zeusync/numsafe/pkg/numeric"
	"github.com/zeusync/numsafe/pkg/validation"
)

type recorder struct {
	mu    sync.Mutex
	warns []string
}

func (r *recorder) reporter() Reporter {
	return FuncReporter{OnWarn: func(msg string, _ ...log.Field) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.warns = append(r.warns, msg)
	}}
}

func TestGuard_Apply(t *testing.T) {
	t.Run("Clean Value Is Silent", func(t *testing.T) {
		rec := &recorder{}
		g := NewGuard(validation.Vec3s, validation.Safe(), rec.reporter())

		require.Equal(t, numeric.Vec3{X: 1}, g.Apply(numeric.Vec3{X: 1}))
		require.Empty(t, rec.warns)
	})

	t.Run("Substitution Is Reported", func(t *testing.T) {
		rec := &recorder{}
		g := NewGuard(validation.Vec3s, validation.Safe(), rec.reporter())

		require.Equal(t, numeric.Vec3{}, g.Apply(numeric.Vec3{X: math.NaN(), Y: 5, Z: 10}))
		require.Equal(t, []string{"value sanitized"}, rec.warns)
	})

	t.Run("Rejection Returns Unsanitized", func(t *testing.T) {
		rec := &recorder{}
		g := NewGuard(validation.Colors, validation.Strict(), rec.reporter())

		in := numeric.NewColorF(3, 0, 0)
		out, status, ok := g.TryApply(in)
		require.False(t, ok)
		require.Equal(t, validation.StatusOutOfRange, status)
		require.Equal(t, in, out)
		require.Equal(t, []string{"sanitization failed, returning unsanitized"}, rec.warns)
	})

	t.Run("Permissive NaN Is Not A Change", func(t *testing.T) {
		rec := &recorder{}
		g := NewGuard(validation.Angles, validation.Permissive(), rec.reporter())

		out := g.Apply(numeric.FromRadians(math.NaN()))
		require.True(t, math.IsNaN(out.Radians()))
		require.Empty(t, rec.warns)
	})
}

func TestGuard_ReporterDoesNotAffectResults(t *testing.T) {
	inputs := []numeric.ColorF{
		numeric.NewColorF(math.NaN(), 0, 0),
		numeric.NewColorFA(2, -1, 0.5, 1),
		numeric.NewColorF(0.3, 0.3, 0.3),
	}

	core, logs := observer.New(zapcore.DebugLevel)
	withLog := NewGuard(validation.Colors, validation.Safe(), LogReporter(log.NewFromZap(zap.New(core), log.LevelDebug)))
	silent := NewGuard(validation.Colors, validation.Safe(), nil)

	for _, in := range inputs {
		a, sa, oka := withLog.TryApply(in)
		b, sb, okb := silent.TryApply(in)
		require.True(t, a.Identical(b))
		require.Equal(t, sa, sb)
		require.Equal(t, oka, okb)
	}

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "sanitize", entry.ContextMap()["component"])
	require.Equal(t, "ColorF", entry.ContextMap()["type"])
	require.Equal(t, "nan", entry.ContextMap()["status"])
	require.Equal(t, "(0, 0, 0, 1)", entry.ContextMap()["sanitized"])
}

func TestGuard_Check(t *testing.T) {
	rec := &recorder{}
	g := NewGuard(validation.Colors, validation.Safe(), rec.reporter())

	bad := numeric.NewColorF(math.Inf(1), 0, 0)
	out := g.Check(bad)
	require.True(t, out.Identical(bad))

	g.Check(numeric.NewColorF(1.5, 0, 0))
	g.Check(numeric.NewColorF(0.5, 0, 0))

	require.Equal(t, []string{"value contains invalid numbers", "value out of declared range"}, rec.warns)
}

func TestGuard_ApplyAll(t *testing.T) {
	values := make([]numeric.Vec2, 64)
	for i := range values {
		values[i] = numeric.Vec2{X: float64(i), Y: -float64(i)}
	}
	values[10] = numeric.Vec2{X: math.NaN()}

	t.Run("Safe Preserves Order", func(t *testing.T) {
		g := NewGuard(validation.Vec2s, validation.Safe(), nil)
		out, err := g.ApplyAll(context.Background(), values, 4)
		require.NoError(t, err)
		require.Len(t, out, len(values))
		require.Equal(t, numeric.Vec2{}, out[10])
		require.Equal(t, numeric.Vec2{X: 63, Y: -63}, out[63])
	})

	t.Run("Strict Fails", func(t *testing.T) {
		rec := &recorder{}
		g := NewGuard(validation.Vec2s, validation.Strict(), rec.reporter())
		_, err := g.ApplyAll(context.Background(), values, 0)
		require.Error(t, err)
		require.True(t, errors.Is(err, validation.ErrInvalidNumber))
		require.NotEmpty(t, rec.warns)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		g := NewGuard(validation.Vec2s, validation.Safe(), nil)
		_, err := g.ApplyAll(ctx, values, 2)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLogReporter_Nil(t *testing.T) {
	require.IsType(t, NopReporter{}, LogReporter(nil))

	var typed *log.Logger
	r := LogReporter(typed)
	require.IsType(t, NopReporter{}, r)
	require.NotPanics(t, func() { r.Warn("dropped") })
}
